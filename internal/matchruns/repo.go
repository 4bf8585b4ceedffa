package matchruns

import "context"

// Repo abstracts match run persistence.
type Repo interface {
	Create(ctx context.Context, run Run) error
	GetByID(ctx context.Context, id string) (Run, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Run, error)
	DeleteByUser(ctx context.Context, userID string) (int, error)
}
