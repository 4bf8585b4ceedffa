package matching

import (
	"errors"
	"fmt"
	"math"
)

// ErrConfig marks configuration rejected at construction time.
var ErrConfig = errors.New("configuration error")

// weightSumTolerance absorbs float noise when checking that a weight group
// sums to one.
const weightSumTolerance = 1e-9

// ScoreWeights are the axis weights of the solution scorer.
type ScoreWeights struct {
	Relevance      float64 `json:"relevance"`
	Quality        float64 `json:"quality"`
	BusinessValue  float64 `json:"businessValue"`
	Implementation float64 `json:"implementation"`
}

// MatchWeights are the criterion weights of the matcher.
type MatchWeights struct {
	Automation float64 `json:"automation"`
	Category   float64 `json:"category"`
	Difficulty float64 `json:"difficulty"`
	SetupTime  float64 `json:"setupTime"`
	Rating     float64 `json:"rating"`
	Priority   float64 `json:"priority"`
	Tags       float64 `json:"tags"`
	Domain     float64 `json:"domain"`
}

// AgentWeights are the axis weights of the agent scorer.
type AgentWeights struct {
	Capability          float64 `json:"capability"`
	Domain              float64 `json:"domain"`
	CapabilityDepth     float64 `json:"capabilityDepth"`
	DomainBreadth       float64 `json:"domainBreadth"`
	DataQuality         float64 `json:"dataQuality"`
	ModelQuality        float64 `json:"modelQuality"`
	ProviderReliability float64 `json:"providerReliability"`
}

// Config is the immutable engine configuration. Construct it with
// DefaultConfig and hand it to NewEngine; the engine never mutates it.
type Config struct {
	ScoreWeights  ScoreWeights `json:"scoreWeights"`
	MatchWeights  MatchWeights `json:"matchWeights"`
	AgentWeights  AgentWeights `json:"agentWeights"`
	MinMatchScore float64      `json:"minMatchScore"`
}

// DefaultConfig returns the production default configuration.
func DefaultConfig() Config {
	return Config{
		ScoreWeights: ScoreWeights{
			Relevance:      0.35,
			Quality:        0.25,
			BusinessValue:  0.25,
			Implementation: 0.15,
		},
		MatchWeights: MatchWeights{
			Automation: 0.25,
			Category:   0.20,
			Difficulty: 0.10,
			SetupTime:  0.10,
			Rating:     0.10,
			Priority:   0.10,
			Tags:       0.05,
			Domain:     0.10,
		},
		AgentWeights: AgentWeights{
			Capability:          0.25,
			Domain:              0.20,
			CapabilityDepth:     0.15,
			DomainBreadth:       0.10,
			DataQuality:         0.15,
			ModelQuality:        0.10,
			ProviderReliability: 0.05,
		},
		MinMatchScore: 30,
	}
}

// Validate rejects weight groups that do not sum to exactly one, negative
// weights and out-of-range thresholds. Weights are never renormalized.
func (c Config) Validate() error {
	if err := validateWeightGroup("scoreWeights", map[string]float64{
		"relevance":      c.ScoreWeights.Relevance,
		"quality":        c.ScoreWeights.Quality,
		"businessValue":  c.ScoreWeights.BusinessValue,
		"implementation": c.ScoreWeights.Implementation,
	}); err != nil {
		return err
	}
	if err := validateWeightGroup("matchWeights", map[string]float64{
		"automation": c.MatchWeights.Automation,
		"category":   c.MatchWeights.Category,
		"difficulty": c.MatchWeights.Difficulty,
		"setupTime":  c.MatchWeights.SetupTime,
		"rating":     c.MatchWeights.Rating,
		"priority":   c.MatchWeights.Priority,
		"tags":       c.MatchWeights.Tags,
		"domain":     c.MatchWeights.Domain,
	}); err != nil {
		return err
	}
	if err := validateWeightGroup("agentWeights", map[string]float64{
		"capability":          c.AgentWeights.Capability,
		"domain":              c.AgentWeights.Domain,
		"capabilityDepth":     c.AgentWeights.CapabilityDepth,
		"domainBreadth":       c.AgentWeights.DomainBreadth,
		"dataQuality":         c.AgentWeights.DataQuality,
		"modelQuality":        c.AgentWeights.ModelQuality,
		"providerReliability": c.AgentWeights.ProviderReliability,
	}); err != nil {
		return err
	}
	if c.MinMatchScore < 0 || c.MinMatchScore > 100 {
		return fmt.Errorf("%w: minMatchScore must be between 0 and 100, got %g", ErrConfig, c.MinMatchScore)
	}
	return nil
}

func validateWeightGroup(name string, weights map[string]float64) error {
	sum := 0.0
	for key, w := range weights {
		if w < 0 {
			return fmt.Errorf("%w: %s.%s must not be negative, got %g", ErrConfig, name, key, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: %s must sum to 1.0, got %g", ErrConfig, name, sum)
	}
	return nil
}
