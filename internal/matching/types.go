package matching

import "prom8eus-backend/internal/catalog"

// Agent tiers, ordered Experimental < Specialist < Generalist.
const (
	TierGeneralist   = "Generalist"
	TierSpecialist   = "Specialist"
	TierExperimental = "Experimental"
)

// Subtask is one unit of business work to match solutions against.
type Subtask struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	BusinessDomain      string   `json:"businessDomain,omitempty"`
	AutomationPotential int      `json:"automationPotential"`
	Keywords            []string `json:"keywords,omitempty"`
	Category            string   `json:"category,omitempty"`
}

// Context carries optional caller hints. A nil or empty field means the hint
// was not supplied; scoring then uses the neutral default instead of a
// penalty.
type Context struct {
	BusinessDomain       string   `json:"businessDomain,omitempty"`
	TargetAutomation     *int     `json:"targetAutomation,omitempty"`
	Difficulty           string   `json:"difficulty,omitempty"`
	SetupTime            string   `json:"setupTime,omitempty"`
	Priority             string   `json:"priority,omitempty"`
	RequiredCapabilities []string `json:"requiredCapabilities,omitempty"`
	PreferredDomains     []string `json:"preferredDomains,omitempty"`
	UserQuery            string   `json:"userQuery,omitempty"`
}

// IsEmpty reports whether no hint at all was supplied.
func (c Context) IsEmpty() bool {
	return c.BusinessDomain == "" &&
		c.TargetAutomation == nil &&
		c.Difficulty == "" &&
		c.SetupTime == "" &&
		c.Priority == "" &&
		len(c.RequiredCapabilities) == 0 &&
		len(c.PreferredDomains) == 0 &&
		c.UserQuery == ""
}

// Breakdown is the fixed set of twelve named sub-scores, each 0-100.
type Breakdown struct {
	AutomationAlignment float64 `json:"automationAlignment"`
	CategoryMatch       float64 `json:"categoryMatch"`
	DifficultyMatch     float64 `json:"difficultyMatch"`
	SetupTimeEfficiency float64 `json:"setupTimeEfficiency"`
	Rating              float64 `json:"rating"`
	TagsRelevance       float64 `json:"tagsRelevance"`
	DomainAlignment     float64 `json:"domainAlignment"`
	CostEffectiveness   float64 `json:"costEffectiveness"`
	Scalability         float64 `json:"scalability"`
	PriorityAlignment   float64 `json:"priorityAlignment"`
	DeploymentFit       float64 `json:"deploymentFit"`
	StatusScore         float64 `json:"statusScore"`
}

// SolutionScore is the scorer's verdict on one solution under one context.
type SolutionScore struct {
	SolutionID     string    `json:"solutionId"`
	Relevance      float64   `json:"relevance"`
	Quality        float64   `json:"quality"`
	BusinessValue  float64   `json:"businessValue"`
	Implementation float64   `json:"implementation"`
	Overall        int       `json:"overall"`
	Breakdown      Breakdown `json:"breakdown"`
	Ranking        int       `json:"ranking,omitempty"`
	Confidence     int       `json:"confidence"`
}

// AgentBreakdown holds the agent-specific sub-scores.
type AgentBreakdown struct {
	CapabilityDepth     float64 `json:"capabilityDepth"`
	DomainBreadth       float64 `json:"domainBreadth"`
	DataQuality         float64 `json:"dataQuality"`
	ModelQuality        float64 `json:"modelQuality"`
	ProviderReliability float64 `json:"providerReliability"`
	Specialization      float64 `json:"specialization"`
}

// AgentScore is the agent scorer's verdict on one agent under one context.
type AgentScore struct {
	AgentID         string         `json:"agentId"`
	CapabilityScore float64        `json:"capabilityScore"`
	DomainScore     float64        `json:"domainScore"`
	Overall         int            `json:"overall"`
	Breakdown       AgentBreakdown `json:"breakdown"`
	Ranking         int            `json:"ranking,omitempty"`
	Confidence      int            `json:"confidence"`
	Tier            string         `json:"tier"`
	Reasoning       []string       `json:"reasoning"`
	Disclaimer      string         `json:"disclaimer"`
}

// Recommendation pairs a solution with everything the caller needs to act on
// it for one subtask.
type Recommendation struct {
	Solution     catalog.Solution   `json:"solution"`
	MatchScore   float64            `json:"matchScore"`
	Reasoning    []string           `json:"reasoning"`
	Alternatives []catalog.Solution `json:"alternatives"`
	Steps        []string           `json:"steps"`
	CostEstimate string             `json:"costEstimate"`
	ExpectedROI  catalog.Range      `json:"expectedROI"`
	Score        SolutionScore      `json:"score"`
	AgentScore   *AgentScore        `json:"agentScore,omitempty"`
}

// SubtaskMatch is the ranked recommendation list for one subtask plus its
// aggregates.
type SubtaskMatch struct {
	SubtaskID           string           `json:"subtaskId"`
	SubtaskName         string           `json:"subtaskName"`
	BusinessDomain      string           `json:"businessDomain,omitempty"`
	AutomationPotential int              `json:"automationPotential"`
	Matches             []Recommendation `json:"matches"`
	TotalMatchScore     float64          `json:"totalMatchScore"`
	Priority            string           `json:"priority"`
	EstimatedROIPct     float64          `json:"estimatedROIPct"`
	TimeToValue         string           `json:"timeToValue,omitempty"`
}

// Stats aggregates a whole matching run.
type Stats struct {
	SubtaskCount   int     `json:"subtaskCount"`
	MatchedCount   int     `json:"matchedCount"`
	AverageScore   float64 `json:"averageScore"`
	HighPriority   int     `json:"highPriority"`
	MediumPriority int     `json:"mediumPriority"`
	LowPriority    int     `json:"lowPriority"`
}

// Result is the full output of one matching run.
type Result struct {
	SubtaskMatches  []SubtaskMatch `json:"subtaskMatches"`
	Stats           Stats          `json:"stats"`
	Recommendations []string       `json:"recommendations"`
}

// Combination is a bundle of solutions proposed together.
type Combination struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Description         string              `json:"description"`
	Solutions           []catalog.Solution  `json:"solutions"`
	Category            string              `json:"category,omitempty"`
	BusinessDomain      string              `json:"businessDomain,omitempty"`
	AutomationPotential int                 `json:"automationPotential"`
	CombinedROI         catalog.Range       `json:"combinedROI"`
	MatchScore          float64             `json:"matchScore"`
	Priority            string              `json:"priority"`
	ImplementationOrder []string            `json:"implementationOrder"`
	Dependencies        map[string][]string `json:"dependencies"`
	SetupTime           string              `json:"setupTime,omitempty"`
	EstimatedCost       string              `json:"estimatedCost,omitempty"`
	Prerequisites       []string            `json:"prerequisites"`
	Benefits            []string            `json:"benefits"`
	Challenges          []string            `json:"challenges"`
	RiskMitigations     []string            `json:"riskMitigations"`
	SuccessMetrics      []string            `json:"successMetrics"`
}

// Phase is one stage of the implementation roadmap.
type Phase struct {
	Number            int           `json:"number"`
	Name              string        `json:"name"`
	Duration          string        `json:"duration"`
	Subtasks          []string      `json:"subtasks"`
	Deliverables      []string      `json:"deliverables"`
	DependsOnPrevious bool          `json:"dependsOnPrevious"`
	EstimatedCost     catalog.Range `json:"estimatedCost"`
	RequiredRoles     []string      `json:"requiredRoles"`
}

// Roadmap is the phased implementation plan over a set of subtask matches.
type Roadmap struct {
	Phases            []Phase             `json:"phases"`
	TotalDuration     string              `json:"totalDuration"`
	TotalCost         catalog.Range       `json:"totalCost"`
	ExpectedROI       catalog.Range       `json:"expectedROI"`
	CriticalPath      []string            `json:"criticalPath"`
	PhaseDependencies map[string][]string `json:"phaseDependencies"`
}
