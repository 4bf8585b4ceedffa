package matching

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
	if _, err := NewEngine(DefaultConfig()); err != nil {
		t.Fatalf("engine construction with defaults failed: %v", err)
	}
}

func TestConfigValidateRejectsBadWeights(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name: "score_weights_not_summing_to_one",
			mutate: func(c *Config) {
				c.ScoreWeights.Relevance = 0.5
			},
		},
		{
			name: "match_weights_not_summing_to_one",
			mutate: func(c *Config) {
				c.MatchWeights.Difficulty = 0.15
				c.MatchWeights.Rating = 0.15
			},
		},
		{
			name: "agent_weights_not_summing_to_one",
			mutate: func(c *Config) {
				c.AgentWeights.Capability = 0.5
			},
		},
		{
			name: "negative_weight",
			mutate: func(c *Config) {
				c.MatchWeights.Tags = -0.05
				c.MatchWeights.Automation = 0.35
			},
		},
		{
			name: "min_match_score_out_of_range",
			mutate: func(c *Config) {
				c.MinMatchScore = 101
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("expected ErrConfig, got %v", err)
			}
			if _, err := NewEngine(cfg); err == nil {
				t.Fatalf("NewEngine must reject the invalid config")
			}
		})
	}
}
