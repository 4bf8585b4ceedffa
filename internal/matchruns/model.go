package matchruns

import (
	"time"

	"prom8eus-backend/internal/matching"
)

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Request is one caller match request. When SolutionIDs is empty the whole
// active catalog becomes the candidate pool.
type Request struct {
	Subtasks    []matching.Subtask `json:"subtasks"`
	Context     matching.Context   `json:"context"`
	SolutionIDs []string           `json:"solutionIds,omitempty"`
}

// Output bundles everything a single engine invocation produces.
type Output struct {
	Result       matching.Result        `json:"result"`
	Combinations []matching.Combination `json:"combinations"`
	Roadmap      matching.Roadmap       `json:"roadmap"`
}

// Run records one match invocation for history and reporting.
type Run struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	RequestHash  string     `json:"requestHash"`
	SubtaskCount int        `json:"subtaskCount"`
	PoolSize     int        `json:"poolSize"`
	Status       string     `json:"status"`
	Output       *Output    `json:"output,omitempty"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	CacheHit     bool       `json:"cacheHit"`
	DurationMS   float64    `json:"durationMs"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}
