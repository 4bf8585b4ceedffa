package catalog

import (
	"context"
	"errors"
	"fmt"

	"prom8eus-backend/internal/shared/telemetry"
)

// poolLimit bounds the candidate pool handed to the matching engine.
const poolLimit = 500

// Service provides catalog operations on top of a Repo.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// RejectedEntry reports one catalog entry that failed validation during
// ingestion.
type RejectedEntry struct {
	Index  int    `json:"index"`
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason"`
}

// IngestResult summarizes a bulk upsert.
type IngestResult struct {
	Accepted int             `json:"accepted"`
	Rejected []RejectedEntry `json:"rejected"`
}

// Ingest validates and upserts a batch of solutions. Invalid entries are
// logged and skipped; a bad entry never aborts the rest of the batch.
func (s *Service) Ingest(ctx context.Context, entries []Solution) (IngestResult, error) {
	result := IngestResult{Rejected: []RejectedEntry{}}
	for i, entry := range entries {
		if err := Validate(entry); err != nil {
			telemetry.Info("catalog.ingest.skipped", map[string]any{
				"index":  i,
				"id":     entry.ID,
				"reason": err.Error(),
			})
			result.Rejected = append(result.Rejected, RejectedEntry{Index: i, ID: entry.ID, Reason: err.Error()})
			continue
		}
		if err := s.Repo.Upsert(ctx, entry); err != nil {
			return result, fmt.Errorf("upsert solution %s: %w", entry.ID, err)
		}
		result.Accepted++
	}
	return result, nil
}

// Get returns one solution by ID.
func (s *Service) Get(ctx context.Context, id string) (Solution, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns solutions matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Solution, error) {
	return s.Repo.List(ctx, f)
}

// Pool returns the candidate pool for matching: every stored solution up to
// the pool limit. Entries that fail validation (for example rows written
// before a rule tightened) are logged and dropped here so the engine only
// ever sees well-formed input.
func (s *Service) Pool(ctx context.Context) ([]Solution, error) {
	all, err := s.Repo.List(ctx, Filter{Limit: poolLimit})
	if err != nil {
		return nil, err
	}
	pool := make([]Solution, 0, len(all))
	for _, sol := range all {
		if err := Validate(sol); err != nil {
			telemetry.Info("catalog.pool.skipped", map[string]any{"id": sol.ID, "reason": err.Error()})
			continue
		}
		pool = append(pool, sol)
	}
	return pool, nil
}

// ByIDs resolves an explicit candidate pool. Unknown IDs are skipped with a
// log line so one stale reference does not sink the whole match request.
func (s *Service) ByIDs(ctx context.Context, ids []string) ([]Solution, error) {
	out := make([]Solution, 0, len(ids))
	for _, id := range ids {
		sol, err := s.Repo.GetByID(ctx, id)
		if errors.Is(err, ErrNotFound) {
			telemetry.Info("catalog.pool.unknown_id", map[string]any{"id": id})
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, sol)
	}
	return out, nil
}

// Seed loads the built-in demo catalog.
func (s *Service) Seed(ctx context.Context) (int, error) {
	res, err := s.Ingest(ctx, SeedSolutions())
	if err != nil {
		return res.Accepted, err
	}
	return res.Accepted, nil
}
