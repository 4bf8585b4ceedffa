package catalog

import "context"

// Filter narrows List results. Zero values mean "any".
type Filter struct {
	Type     string
	Category string
	Status   string
	Limit    int
	Offset   int
}

// Repo defines persistence operations for the solution catalog.
type Repo interface {
	Upsert(ctx context.Context, s Solution) error
	GetByID(ctx context.Context, id string) (Solution, error)
	List(ctx context.Context, f Filter) ([]Solution, error)
	Count(ctx context.Context) (int, error)
}
