package feedback

import "context"

// Repo defines persistence operations for feedback entries.
type Repo interface {
	Create(ctx context.Context, fb Feedback) error
	ListBySolution(ctx context.Context, solutionID string, limit, offset int) ([]Feedback, error)
	DeleteByUser(ctx context.Context, userID string) (int, error)
}
