package feedback

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu         sync.RWMutex
	byID       map[string]Feedback
	bySolution map[string][]string // solutionId -> feedback ids
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:       make(map[string]Feedback),
		bySolution: make(map[string][]string),
	}
}

// Create stores a feedback entry.
func (r *MemoryRepo) Create(ctx context.Context, fb Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[fb.ID] = fb
	r.bySolution[fb.SolutionID] = append(r.bySolution[fb.SolutionID], fb.ID)
	return nil
}

// ListBySolution returns feedback for a solution, newest first.
func (r *MemoryRepo) ListBySolution(ctx context.Context, solutionID string, limit, offset int) ([]Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	ids := r.bySolution[solutionID]
	entries := make([]Feedback, 0, len(ids))
	for _, id := range ids {
		if fb, ok := r.byID[id]; ok {
			entries = append(entries, fb)
		}
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	if offset >= len(entries) {
		return []Feedback{}, nil
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[offset:end], nil
}

// DeleteByUser removes every feedback entry submitted by a user and reports the count.
func (r *MemoryRepo) DeleteByUser(ctx context.Context, userID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, fb := range r.byID {
		if fb.UserID != userID {
			continue
		}
		delete(r.byID, id)
		ids := r.bySolution[fb.SolutionID]
		for i, sid := range ids {
			if sid == id {
				r.bySolution[fb.SolutionID] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
		n++
	}
	return n, nil
}

var _ Repo = (*MemoryRepo)(nil)
