package feedback

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// NewPGRepo constructs a PGRepo.
func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{DB: db}
}

// Create inserts a feedback entry.
func (r *PGRepo) Create(ctx context.Context, fb Feedback) error {
	const query = `
INSERT INTO feedback (
    id,
    user_id,
    solution_id,
    match_run_id,
    rating,
    comment,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var matchRunID sql.NullString
	if fb.MatchRunID != "" {
		matchRunID = sql.NullString{String: fb.MatchRunID, Valid: true}
	}
	var comment sql.NullString
	if fb.Comment != "" {
		comment = sql.NullString{String: fb.Comment, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		fb.ID,
		fb.UserID,
		fb.SolutionID,
		matchRunID,
		fb.Rating,
		comment,
		fb.CreatedAt,
	)
	return err
}

// ListBySolution returns feedback for a solution, newest first.
func (r *PGRepo) ListBySolution(ctx context.Context, solutionID string, limit, offset int) ([]Feedback, error) {
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
SELECT id, user_id, solution_id, match_run_id, rating, comment, created_at
FROM feedback
WHERE solution_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, solutionID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Feedback
	for rows.Next() {
		var fb Feedback
		var matchRunID sql.NullString
		var comment sql.NullString
		if err := rows.Scan(
			&fb.ID,
			&fb.UserID,
			&fb.SolutionID,
			&matchRunID,
			&fb.Rating,
			&comment,
			&fb.CreatedAt,
		); err != nil {
			return nil, err
		}
		if matchRunID.Valid {
			fb.MatchRunID = matchRunID.String
		}
		if comment.Valid {
			fb.Comment = comment.String
		}
		out = append(out, fb)
	}
	return out, rows.Err()
}

// DeleteByUser removes every feedback entry submitted by a user and reports the count.
func (r *PGRepo) DeleteByUser(ctx context.Context, userID string) (int, error) {
	const query = `DELETE FROM feedback WHERE user_id = $1`
	res, err := r.DB.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, err
	}
	deleted, _ := res.RowsAffected()
	return int(deleted), nil
}

var _ Repo = (*PGRepo)(nil)
