package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres. The full solution document lives in
// a JSONB column; type, category and status are extracted for filtering.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or replaces a solution by ID.
func (r *PGRepo) Upsert(ctx context.Context, s Solution) error {
	const query = `
INSERT INTO solutions (id, type, name, category, status, doc, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
ON CONFLICT (id) DO UPDATE
SET type = EXCLUDED.type,
    name = EXCLUDED.name,
    category = EXCLUDED.category,
    status = EXCLUDED.status,
    doc = EXCLUDED.doc,
    updated_at = EXCLUDED.updated_at`
	doc, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal solution %s: %w", s.ID, err)
	}
	_, err = r.DB.ExecContext(ctx, query, s.ID, s.Type, s.Name, s.Category, s.Status, doc, time.Now().UTC())
	return err
}

// GetByID returns a solution by its ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Solution, error) {
	const query = `
SELECT doc, created_at, updated_at
FROM solutions
WHERE id = $1
LIMIT 1`
	var doc []byte
	var createdAt, updatedAt time.Time
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&doc, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Solution{}, ErrNotFound
	}
	if err != nil {
		return Solution{}, err
	}
	var s Solution
	if err := json.Unmarshal(doc, &s); err != nil {
		return Solution{}, fmt.Errorf("unmarshal solution %s: %w", id, err)
	}
	s.CreatedAt = createdAt
	s.UpdatedAt = updatedAt
	return s, nil
}

// List returns solutions matching the filter, ordered by ID.
func (r *PGRepo) List(ctx context.Context, f Filter) ([]Solution, error) {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Limit > 500 {
		f.Limit = 500
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	query := `SELECT doc, created_at, updated_at FROM solutions WHERE 1=1`
	args := make([]any, 0, 5)
	if f.Type != "" {
		args = append(args, f.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	args = append(args, f.Limit)
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Solution{}
	for rows.Next() {
		var doc []byte
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&doc, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		var s Solution
		if err := json.Unmarshal(doc, &s); err != nil {
			return nil, fmt.Errorf("unmarshal solution row: %w", err)
		}
		s.CreatedAt = createdAt
		s.UpdatedAt = updatedAt
		out = append(out, s)
	}
	return out, rows.Err()
}

// Count returns the total number of stored solutions.
func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM solutions`).Scan(&n)
	return n, err
}
