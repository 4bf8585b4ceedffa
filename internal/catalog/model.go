package catalog

import "time"

// Solution type discriminator.
const (
	TypeWorkflow = "workflow"
	TypeAgent    = "agent"
)

// Difficulty levels.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Setup time buckets.
const (
	SetupQuick  = "Quick"
	SetupMedium = "Medium"
	SetupLong   = "Long"
)

// Deployment models.
const (
	DeployCloud  = "Cloud"
	DeployLocal  = "Local"
	DeployHybrid = "Hybrid"
)

// Lifecycle statuses.
const (
	StatusActive     = "Active"
	StatusBeta       = "Beta"
	StatusInactive   = "Inactive"
	StatusDeprecated = "Deprecated"
)

// Priority levels.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Pricing tiers.
const (
	PricingFree       = "Free"
	PricingFreemium   = "Freemium"
	PricingPaid       = "Paid"
	PricingEnterprise = "Enterprise"
)

// Solution is a catalog entry describing one automation option, either a
// workflow template or an AI agent. The Type field selects which of the
// variant metadata structs is populated.
type Solution struct {
	ID                  string        `json:"id"`
	Type                string        `json:"type"`
	Name                string        `json:"name"`
	Description         string        `json:"description,omitempty"`
	Category            string        `json:"category"`
	Subcategories       []string      `json:"subcategories,omitempty"`
	Tags                []string      `json:"tags,omitempty"`
	Difficulty          string        `json:"difficulty,omitempty"`
	SetupTime           string        `json:"setupTime,omitempty"`
	Deployment          string        `json:"deployment,omitempty"`
	Status              string        `json:"status,omitempty"`
	AutomationPotential int           `json:"automationPotential"`
	EstimatedROI        Range         `json:"estimatedROI"`
	TimeToValue         string        `json:"timeToValue,omitempty"`
	Priority            string        `json:"priority,omitempty"`
	Pricing             string        `json:"pricing,omitempty"`
	Requirements        []Requirement `json:"requirements,omitempty"`
	UseCases            []UseCase     `json:"useCases,omitempty"`
	Integrations        []Integration `json:"integrations,omitempty"`
	Metrics             Metrics       `json:"metrics"`
	DocumentationURL    string        `json:"documentationUrl,omitempty"`
	DemoURL             string        `json:"demoUrl,omitempty"`
	Workflow            *WorkflowMeta `json:"workflow,omitempty"`
	Agent               *AgentMeta    `json:"agent,omitempty"`
	CreatedAt           time.Time     `json:"createdAt,omitempty"`
	UpdatedAt           time.Time     `json:"updatedAt,omitempty"`
}

// WorkflowMeta carries workflow-only attributes.
type WorkflowMeta struct {
	NodeCount   int    `json:"nodeCount,omitempty"`
	TriggerType string `json:"triggerType,omitempty"`
	Complexity  string `json:"complexity,omitempty"`
}

// AgentMeta carries agent-only attributes.
type AgentMeta struct {
	Model        string   `json:"model,omitempty"`
	Provider     string   `json:"provider,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Domains      []string `json:"domains,omitempty"`
}

// Metrics holds observed operational numbers for a solution. Zero values mean
// the number was never reported, not that it was measured as zero.
type Metrics struct {
	UsageCount         int     `json:"usageCount,omitempty"`
	SuccessRate        float64 `json:"successRate,omitempty"`
	AvgExecutionTimeMS int     `json:"avgExecutionTimeMs,omitempty"`
	ErrorRate          float64 `json:"errorRate,omitempty"`
	UserRating         float64 `json:"userRating,omitempty"`
	ReviewCount        int     `json:"reviewCount,omitempty"`
	PerformanceScore   float64 `json:"performanceScore,omitempty"`
}

// Requirement describes one prerequisite group for adopting a solution.
type Requirement struct {
	Category      string   `json:"category"`
	Items         []string `json:"items,omitempty"`
	Importance    string   `json:"importance,omitempty"`
	Alternatives  []string `json:"alternatives,omitempty"`
	EstimatedCost string   `json:"estimatedCost,omitempty"`
}

// UseCase is a documented application of a solution.
type UseCase struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Industry    string `json:"industry,omitempty"`
}

// Integration names an external system a solution connects to.
type Integration struct {
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	Required bool   `json:"required,omitempty"`
}

// IsAgent reports whether the solution is an AI agent entry.
func (s Solution) IsAgent() bool { return s.Type == TypeAgent }

// IsWorkflow reports whether the solution is a workflow template entry.
func (s Solution) IsWorkflow() bool { return s.Type == TypeWorkflow }
