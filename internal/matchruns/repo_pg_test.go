package matchruns

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"prom8eus-backend/internal/matching"
)

var runColumns = []string{
	"id", "user_id", "request_hash", "subtask_count", "pool_size", "status",
	"output", "error_message", "cache_hit", "duration_ms", "created_at", "completed_at",
}

func storedRun(id string) Run {
	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	completed := created.Add(40 * time.Millisecond)
	return Run{
		ID:           id,
		UserID:       "user-1",
		RequestHash:  "a1b2c3",
		SubtaskCount: 2,
		PoolSize:     6,
		Status:       StatusCompleted,
		Output: &Output{
			Result: matching.Result{
				Stats: matching.Stats{
					SubtaskCount: 2,
					MatchedCount: 1,
					AverageScore: 72.5,
					HighPriority: 1,
					LowPriority:  1,
				},
				Recommendations: []string{"Review the unmatched subtasks for manual handling."},
			},
		},
		CacheHit:    false,
		DurationMS:  40,
		CreatedAt:   created,
		CompletedAt: &completed,
	}
}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	run := storedRun("run-1")

	mock.ExpectExec("INSERT INTO match_runs").
		WithArgs(
			run.ID,
			run.UserID,
			run.RequestHash,
			run.SubtaskCount,
			run.PoolSize,
			run.Status,
			sqlmock.AnyArg(), // output json
			sqlmock.AnyArg(), // error message
			run.CacheHit,
			run.DurationMS,
			run.CreatedAt,
			sqlmock.AnyArg(), // completed at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), run); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	run := storedRun("run-1")
	output, err := json.Marshal(run.Output)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	mock.ExpectQuery("SELECT .* FROM match_runs").
		WithArgs(run.ID).
		WillReturnRows(sqlmock.NewRows(runColumns).AddRow(
			run.ID, run.UserID, run.RequestHash, run.SubtaskCount, run.PoolSize,
			run.Status, output, nil, run.CacheHit, run.DurationMS,
			run.CreatedAt, *run.CompletedAt,
		))

	got, err := repo.GetByID(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != run.ID || got.UserID != run.UserID || got.RequestHash != run.RequestHash {
		t.Fatalf("got %+v, want the stored run back", got)
	}
	if got.Output == nil {
		t.Fatalf("output not decoded from the row")
	}
	if got.Output.Result.Stats != run.Output.Result.Stats {
		t.Fatalf("stats = %+v, want %+v", got.Output.Result.Stats, run.Output.Result.Stats)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(*run.CompletedAt) {
		t.Fatalf("completedAt not taken from the row")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT .* FROM match_runs").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(runColumns))

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPGRepoListClampsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT .* FROM match_runs WHERE user_id = .* ORDER BY created_at DESC, id DESC").
		WithArgs("user-1", 20, 0).
		WillReturnRows(sqlmock.NewRows(runColumns))
	if _, err := repo.ListByUser(context.Background(), "user-1", 0, 0); err != nil {
		t.Fatalf("ListByUser default limit: %v", err)
	}

	mock.ExpectQuery("SELECT .* FROM match_runs WHERE user_id = .* ORDER BY created_at DESC, id DESC").
		WithArgs("user-1", 100, 0).
		WillReturnRows(sqlmock.NewRows(runColumns))
	if _, err := repo.ListByUser(context.Background(), "user-1", 9999, 0); err != nil {
		t.Fatalf("ListByUser capped limit: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoDeleteByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("DELETE FROM match_runs").
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("DeleteByUser: %v", err)
	}
	if n != 3 {
		t.Fatalf("deleted = %d, want 3", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
