// Package matching implements the deterministic solution matching and
// scoring engine: per-subtask ranked recommendations, agent tiering,
// multi-solution combinations and the phased implementation roadmap.
//
// Every operation is a pure function of its inputs and the engine
// configuration. Inputs are never mutated and identical inputs always
// produce identical output, so results can be cached and compared byte for
// byte.
package matching

import "fmt"

// Engine evaluates solutions against subtasks under one immutable
// configuration.
type Engine struct {
	cfg Config
}

// NewEngine validates the configuration and constructs an engine. Invalid
// weights are rejected here, never silently renormalized.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("matching: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}
