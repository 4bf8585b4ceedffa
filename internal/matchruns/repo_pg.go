package matchruns

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The engine output lives in a JSONB
// column; the remaining fields are flat columns for cheap history listings.
type PGRepo struct {
	DB *sql.DB
}

// NewPGRepo constructs a PGRepo.
func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{DB: db}
}

// Create inserts a new run row.
func (r *PGRepo) Create(ctx context.Context, run Run) error {
	const query = `
INSERT INTO match_runs (id, user_id, request_hash, subtask_count, pool_size, status, output, error_message, cache_hit, duration_ms, created_at, completed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	output, err := marshalOutput(run.Output)
	if err != nil {
		return fmt.Errorf("marshal run %s output: %w", run.ID, err)
	}
	var errMsg sql.NullString
	if run.ErrorMessage != "" {
		errMsg = sql.NullString{String: run.ErrorMessage, Valid: true}
	}
	var completedAt sql.NullTime
	if run.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *run.CompletedAt, Valid: true}
	}

	_, err = r.DB.ExecContext(ctx, query,
		run.ID, run.UserID, run.RequestHash, run.SubtaskCount, run.PoolSize,
		run.Status, output, errMsg, run.CacheHit, run.DurationMS,
		run.CreatedAt, completedAt)
	return err
}

// GetByID returns a run by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Run, error) {
	const query = `
SELECT id, user_id, request_hash, subtask_count, pool_size, status, output, error_message, cache_hit, duration_ms, created_at, completed_at
FROM match_runs
WHERE id = $1
LIMIT 1`

	var run Run
	var output []byte
	var errMsg sql.NullString
	var completedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&run.ID, &run.UserID, &run.RequestHash, &run.SubtaskCount, &run.PoolSize,
		&run.Status, &output, &errMsg, &run.CacheHit, &run.DurationMS,
		&run.CreatedAt, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	if err != nil {
		return Run{}, err
	}
	if len(output) > 0 {
		var out Output
		if err := json.Unmarshal(output, &out); err != nil {
			return Run{}, fmt.Errorf("unmarshal run %s output: %w", id, err)
		}
		run.Output = &out
	}
	if errMsg.Valid {
		run.ErrorMessage = errMsg.String
	}
	if completedAt.Valid {
		t := completedAt.Time
		run.CompletedAt = &t
	}
	return run, nil
}

// ListByUser returns a user's runs ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT id, user_id, request_hash, subtask_count, pool_size, status, output, error_message, cache_hit, duration_ms, created_at, completed_at
FROM match_runs
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Run{}
	for rows.Next() {
		var run Run
		var output []byte
		var errMsg sql.NullString
		var completedAt sql.NullTime
		if err := rows.Scan(
			&run.ID, &run.UserID, &run.RequestHash, &run.SubtaskCount, &run.PoolSize,
			&run.Status, &output, &errMsg, &run.CacheHit, &run.DurationMS,
			&run.CreatedAt, &completedAt); err != nil {
			return nil, err
		}
		if len(output) > 0 {
			var o Output
			if err := json.Unmarshal(output, &o); err != nil {
				return nil, fmt.Errorf("unmarshal run %s output: %w", run.ID, err)
			}
			run.Output = &o
		}
		if errMsg.Valid {
			run.ErrorMessage = errMsg.String
		}
		if completedAt.Valid {
			t := completedAt.Time
			run.CompletedAt = &t
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// DeleteByUser removes all of a user's runs and returns how many were removed.
func (r *PGRepo) DeleteByUser(ctx context.Context, userID string) (int, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM match_runs WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func marshalOutput(out *Output) ([]byte, error) {
	if out == nil {
		return nil, nil
	}
	return json.Marshal(out)
}

var _ Repo = (*PGRepo)(nil)
