package feedback

import "time"

// Feedback is a user's verdict on a recommended solution.
type Feedback struct {
	ID         string    `json:"feedbackId"`
	UserID     string    `json:"-"`
	SolutionID string    `json:"solutionId"`
	MatchRunID string    `json:"matchRunId,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
