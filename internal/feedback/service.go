package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"prom8eus-backend/internal/catalog"
	"prom8eus-backend/internal/shared/telemetry"
)

const maxCommentLength = 2000

// Service contains business logic for recommendation feedback.
// Entries are stored for later review only; nothing feeds them back
// into match scoring.
type Service struct {
	Repo    Repo
	Catalog *catalog.Service
}

// SubmitInput carries a new feedback entry from the API layer.
type SubmitInput struct {
	SolutionID string
	MatchRunID string
	Rating     int
	Comment    string
}

// Submit validates and stores one feedback entry.
func (s *Service) Submit(ctx context.Context, userID string, in SubmitInput) (Feedback, error) {
	if userID == "" {
		return Feedback{}, errors.New("user id required")
	}

	in.SolutionID = strings.TrimSpace(in.SolutionID)
	in.MatchRunID = strings.TrimSpace(in.MatchRunID)
	in.Comment = strings.TrimSpace(in.Comment)

	if in.SolutionID == "" {
		return Feedback{}, fmt.Errorf("%w: solutionId is required", ErrInvalidInput)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return Feedback{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	if len(in.Comment) > maxCommentLength {
		return Feedback{}, fmt.Errorf("%w: comment must be at most %d characters", ErrInvalidInput, maxCommentLength)
	}

	if _, err := s.Catalog.Get(ctx, in.SolutionID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return Feedback{}, fmt.Errorf("%w: %s", ErrUnknownSolution, in.SolutionID)
		}
		return Feedback{}, err
	}

	fb := Feedback{
		ID:         uuid.NewString(),
		UserID:     userID,
		SolutionID: in.SolutionID,
		MatchRunID: in.MatchRunID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, fb); err != nil {
		return Feedback{}, fmt.Errorf("store feedback: %w", err)
	}

	telemetry.Info("feedback.submitted", map[string]any{
		"user_id":     userID,
		"feedback_id": fb.ID,
		"solution_id": fb.SolutionID,
		"rating":      fb.Rating,
	})

	return fb, nil
}

// ListBySolution returns feedback entries for one solution, newest first.
func (s *Service) ListBySolution(ctx context.Context, solutionID string, limit, offset int) ([]Feedback, error) {
	solutionID = strings.TrimSpace(solutionID)
	if solutionID == "" {
		return nil, fmt.Errorf("%w: solutionId is required", ErrInvalidInput)
	}
	return s.Repo.ListBySolution(ctx, solutionID, limit, offset)
}
