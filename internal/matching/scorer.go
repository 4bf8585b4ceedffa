package matching

import (
	"math"

	"prom8eus-backend/internal/catalog"
)

// Boost thresholds and factors of the solution scorer. Boosts are
// independent and multiplicative; a score can receive several at once.
const (
	highValueThreshold   = 80.0
	highValueBoost       = 1.2
	quickSetupThreshold  = 80.0
	quickSetupBoost      = 1.15
	solidValueThreshold  = 75.0
	solidValueBoost      = 1.1
	trackRecordThreshold = 85.0
	trackRecordBoost     = 1.25
)

// Score evaluates one solution under the caller's context. It is a pure
// function of its inputs and the engine configuration.
func (e *Engine) Score(sol catalog.Solution, ctx Context) SolutionScore {
	b := BuildBreakdown(sol, ctx)

	relevance := relevanceScore(b, ctx)
	quality := mean(
		b.Rating,
		sol.Metrics.SuccessRate,
		sol.Metrics.PerformanceScore,
		math.Min(float64(sol.Metrics.ReviewCount)*2, 100),
		b.StatusScore,
	)
	businessValue := mean(
		float64(sol.AutomationPotential),
		roiScore(sol.EstimatedROI),
		timeToValueScore(sol.TimeToValue),
		easeScore(sol.Priority),
	)

	implTerms := []float64{
		easeScore(sol.SetupTime),
		easeScore(sol.Difficulty),
		deploymentScore(sol.Deployment),
	}
	if sol.DocumentationURL != "" {
		implTerms = append(implTerms, 80)
	}
	if sol.DemoURL != "" {
		implTerms = append(implTerms, 60)
	}
	implementation := mean(implTerms...)

	w := e.cfg.ScoreWeights
	overall := relevance*w.Relevance + quality*w.Quality + businessValue*w.BusinessValue + implementation*w.Implementation

	if businessValue >= highValueThreshold {
		overall *= highValueBoost
	}
	if implementation >= quickSetupThreshold {
		overall *= quickSetupBoost
	}
	if businessValue >= solidValueThreshold {
		overall *= solidValueBoost
	}
	if quality >= trackRecordThreshold {
		overall *= trackRecordBoost
	}
	if overall > 100 {
		overall = 100
	}

	return SolutionScore{
		SolutionID:     sol.ID,
		Relevance:      relevance,
		Quality:        quality,
		BusinessValue:  businessValue,
		Implementation: implementation,
		Overall:        int(math.Round(overall)),
		Breakdown:      b,
		Confidence:     confidence(sol),
	}
}

// relevanceScore averages only the sub-scores whose context hint was
// supplied. With no hints at all it is exactly the neutral default.
func relevanceScore(b Breakdown, ctx Context) float64 {
	terms := make([]float64, 0, 5)
	if ctx.BusinessDomain != "" {
		terms = append(terms, b.DomainAlignment)
	}
	if ctx.TargetAutomation != nil {
		terms = append(terms, b.AutomationAlignment)
	}
	if ctx.Difficulty != "" {
		terms = append(terms, b.DifficultyMatch)
	}
	if ctx.SetupTime != "" {
		terms = append(terms, b.SetupTimeEfficiency)
	}
	if ctx.Priority != "" {
		terms = append(terms, b.PriorityAlignment)
	}
	if len(terms) == 0 {
		return neutralScore
	}
	return mean(terms...)
}

// confidence estimates how much evidence backs a score.
func confidence(sol catalog.Solution) int {
	c := 50
	if sol.Metrics.ReviewCount >= 10 {
		c += 20
	}
	if sol.Metrics.UsageCount >= 100 {
		c += 15
	}
	if sol.DocumentationURL != "" {
		c += 10
	}
	if sol.DemoURL != "" {
		c += 5
	}
	switch sol.Status {
	case catalog.StatusBeta:
		c -= 15
	case catalog.StatusDeprecated:
		c -= 30
	}
	if c > 100 {
		return 100
	}
	if c < 0 {
		return 0
	}
	return c
}

func mean(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
