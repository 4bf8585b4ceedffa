package taskdocs

import (
	"context"
	"time"
)

// Repo defines persistence operations for task documents.
type Repo interface {
	Create(ctx context.Context, doc TaskDocument) error
	GetByID(ctx context.Context, userID, docID string) (TaskDocument, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]TaskDocument, error)
	UpdateExtraction(ctx context.Context, userID, docID, extractedKey string, extractedAt time.Time) error
	DeleteByUser(ctx context.Context, userID string) (int, error)
}
