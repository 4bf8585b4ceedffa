package account

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"prom8eus-backend/internal/feedback"
	"prom8eus-backend/internal/matchruns"
	"prom8eus-backend/internal/shared/telemetry"
	"prom8eus-backend/internal/taskdocs"
	"prom8eus-backend/internal/usage"
	"prom8eus-backend/internal/users"
)

type Service struct {
	Runs     matchruns.Repo
	Docs     taskdocs.Repo
	Feedback feedback.Repo
	Usage    *usage.Service
	Users    users.Repo
}

type DeleteResult struct {
	DeletedMatchRuns int `json:"deletedMatchRuns"`
	DeletedDocuments int `json:"deletedDocuments"`
	DeletedFeedback  int `json:"deletedFeedback"`
}

func NewService(runs matchruns.Repo, docs taskdocs.Repo, fb feedback.Repo, usageSvc *usage.Service, userRepo users.Repo) *Service {
	return &Service{Runs: runs, Docs: docs, Feedback: fb, Usage: usageSvc, Users: userRepo}
}

// DeleteAccount removes everything stored for the user: match runs,
// task documents, feedback, the usage row and the profile row.
func (s *Service) DeleteAccount(ctx context.Context, userID string) (DeleteResult, error) {
	if strings.TrimSpace(userID) == "" {
		return DeleteResult{}, errors.New("userID is required")
	}

	if runsPG, ok := s.Runs.(*matchruns.PGRepo); ok && runsPG != nil && runsPG.DB != nil {
		if docsPG, ok := s.Docs.(*taskdocs.PGRepo); ok && docsPG != nil && docsPG.DB != nil {
			if fbPG, ok := s.Feedback.(*feedback.PGRepo); ok && fbPG != nil && fbPG.DB != nil {
				result, err := deleteWithTx(ctx, runsPG.DB, userID)
				if err == nil {
					logDeleted(userID, result)
				}
				return result, err
			}
		}
	}

	runCount, err := s.Runs.DeleteByUser(ctx, userID)
	if err != nil {
		return DeleteResult{}, err
	}
	docCount, err := s.Docs.DeleteByUser(ctx, userID)
	if err != nil {
		return DeleteResult{}, err
	}
	fbCount, err := s.Feedback.DeleteByUser(ctx, userID)
	if err != nil {
		return DeleteResult{}, err
	}
	if s.Usage != nil {
		if err := s.Usage.Delete(ctx, userID); err != nil {
			return DeleteResult{}, err
		}
	}
	if s.Users != nil {
		if err := s.Users.Delete(ctx, userID); err != nil {
			return DeleteResult{}, err
		}
	}

	result := DeleteResult{DeletedMatchRuns: runCount, DeletedDocuments: docCount, DeletedFeedback: fbCount}
	logDeleted(userID, result)
	return result, nil
}

func deleteWithTx(ctx context.Context, db *sql.DB, userID string) (DeleteResult, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return DeleteResult{}, err
	}
	defer tx.Rollback()

	runRes, err := tx.ExecContext(ctx, `DELETE FROM match_runs WHERE user_id = $1`, userID)
	if err != nil {
		return DeleteResult{}, err
	}
	runCount, _ := runRes.RowsAffected()

	docRes, err := tx.ExecContext(ctx, `UPDATE task_documents SET deleted_at = now() WHERE user_id = $1 AND deleted_at IS NULL`, userID)
	if err != nil {
		return DeleteResult{}, err
	}
	docCount, _ := docRes.RowsAffected()

	fbRes, err := tx.ExecContext(ctx, `DELETE FROM feedback WHERE user_id = $1`, userID)
	if err != nil {
		return DeleteResult{}, err
	}
	fbCount, _ := fbRes.RowsAffected()

	if _, err := tx.ExecContext(ctx, `DELETE FROM usage WHERE user_id = $1`, userID); err != nil {
		return DeleteResult{}, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		return DeleteResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{
		DeletedMatchRuns: int(runCount),
		DeletedDocuments: int(docCount),
		DeletedFeedback:  int(fbCount),
	}, nil
}

func logDeleted(userID string, result DeleteResult) {
	telemetry.Info("account.deleted", map[string]any{
		"user_id":    userID,
		"match_runs": result.DeletedMatchRuns,
		"documents":  result.DeletedDocuments,
		"feedback":   result.DeletedFeedback,
	})
}
