package taskdocs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"prom8eus-backend/internal/extract"
	"prom8eus-backend/internal/shared/storage/object"
)

// Service contains business logic for task documents.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
	// StorageProvider labels where blobs land, "local" or "s3".
	StorageProvider string
}

// Upload saves the file to object storage, extracts its text and records the document.
// The extracted text lands next to the original under <storageKey>.extracted.txt.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (TaskDocument, error) {
	if fileName == "" {
		return TaskDocument{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return TaskDocument{}, err
	}

	if _, err := extract.ExtractText(ctx, s.Store, storageKey, mimeType, fileName); err != nil {
		if errors.Is(err, extract.ErrUnsupportedMime) {
			return TaskDocument{}, fmt.Errorf("%w: %s", ErrInvalidInput, mimeType)
		}
		return TaskDocument{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	now := time.Now().UTC()
	extractedAt := now
	doc := TaskDocument{
		ID:               uuid.NewString(),
		UserID:           userID,
		FileName:         fileName,
		MimeType:         mimeType,
		SizeBytes:        size,
		StorageProvider:  s.StorageProvider,
		StorageKey:       storageKey,
		ExtractedTextKey: storageKey + ".extracted.txt",
		ExtractedAt:      &extractedAt,
		CreatedAt:        now,
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return TaskDocument{}, err
	}

	return doc, nil
}

// Get returns a task document by ID for a user.
func (s *Service) Get(ctx context.Context, userID, docID string) (TaskDocument, error) {
	if userID == "" {
		return TaskDocument{}, errors.New("user id required")
	}
	return s.Repo.GetByID(ctx, userID, docID)
}

// List returns task documents for a user, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]TaskDocument, error) {
	if userID == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Text returns a task document together with its extracted text, extracting
// on demand when an older record has no derived copy yet.
func (s *Service) Text(ctx context.Context, userID, docID string) (TaskDocument, string, error) {
	doc, err := s.Get(ctx, userID, docID)
	if err != nil {
		return TaskDocument{}, "", err
	}

	extractedKey := doc.ExtractedTextKey
	if extractedKey == "" {
		if _, err := extract.ExtractText(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName); err != nil {
			return TaskDocument{}, "", fmt.Errorf("%w: %v", ErrExtraction, err)
		}
		extractedKey = doc.StorageKey + ".extracted.txt"
		extractedAt := time.Now().UTC()
		if err := s.Repo.UpdateExtraction(ctx, doc.UserID, doc.ID, extractedKey, extractedAt); err != nil {
			return TaskDocument{}, "", fmt.Errorf("update extraction for document %s: %w", doc.ID, err)
		}
		doc.ExtractedTextKey = extractedKey
		doc.ExtractedAt = &extractedAt
	}

	text, err := loadText(ctx, s.Store, extractedKey)
	if err != nil {
		return TaskDocument{}, "", fmt.Errorf("load extracted text for document %s: %w", doc.ID, err)
	}
	return doc, text, nil
}

func loadText(ctx context.Context, store object.ObjectStore, key string) (string, error) {
	body, err := store.Open(ctx, key)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
