package catalog

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores solutions in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Solution
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Solution)}
}

// Upsert inserts or replaces a solution by ID.
func (r *MemoryRepo) Upsert(ctx context.Context, s Solution) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := r.byID[s.ID]; ok {
		s.CreatedAt = existing.CreatedAt
	} else if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	r.byID[s.ID] = s
	return nil
}

// GetByID returns a solution by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Solution, error) {
	if err := ctx.Err(); err != nil {
		return Solution{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return Solution{}, ErrNotFound
	}
	return s, nil
}

// List returns solutions matching the filter, ordered by ID for stable
// pagination.
func (r *MemoryRepo) List(ctx context.Context, f Filter) ([]Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.Limit < 0 {
		f.Limit = 0
	}

	r.mu.RLock()
	matched := make([]Solution, 0, len(r.byID))
	for _, s := range r.byID {
		if f.Type != "" && s.Type != f.Type {
			continue
		}
		if f.Category != "" && s.Category != f.Category {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		matched = append(matched, s)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	if f.Offset >= len(matched) {
		return []Solution{}, nil
	}
	end := len(matched)
	if f.Limit > 0 && f.Offset+f.Limit < end {
		end = f.Offset + f.Limit
	}
	return matched[f.Offset:end], nil
}

// Count returns the total number of stored solutions.
func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
