package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	sol := validWorkflow()

	mock.ExpectExec("INSERT INTO solutions").
		WithArgs(
			sol.ID,
			sol.Type,
			sol.Name,
			sol.Category,
			sol.Status,
			sqlmock.AnyArg(), // doc
			sqlmock.AnyArg(), // timestamp
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), sol); err != nil {
		t.Fatalf("Upsert: %v", err)
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
	sol := validWorkflow()
	doc, err := json.Marshal(sol)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT doc, created_at, updated_at").
		WithArgs(sol.ID).
		WillReturnRows(sqlmock.NewRows([]string{"doc", "created_at", "updated_at"}).AddRow(doc, now, now))

	got, err := repo.GetByID(context.Background(), sol.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != sol.ID || got.Name != sol.Name || got.Category != sol.Category {
		t.Fatalf("got %+v, want the stored solution back", got)
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps not taken from the row")
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
	mock.ExpectQuery("SELECT doc, created_at, updated_at").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"doc", "created_at", "updated_at"}))

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPGRepoListAppliesFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	sol := validWorkflow()
	doc, err := json.Marshal(sol)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT doc, created_at, updated_at FROM solutions WHERE 1=1 AND type = .* AND status = .* ORDER BY id").
		WithArgs(TypeWorkflow, StatusActive, 50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"doc", "created_at", "updated_at"}).AddRow(doc, now, now))

	out, err := repo.List(context.Background(), Filter{Type: TypeWorkflow, Status: StatusActive})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 || out[0].ID != sol.ID {
		t.Fatalf("list = %v, want the one stored solution", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListClampsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT doc, created_at, updated_at FROM solutions").
		WithArgs(500, 0).
		WillReturnRows(sqlmock.NewRows([]string{"doc", "created_at", "updated_at"}))

	if _, err := repo.List(context.Background(), Filter{Limit: 9999}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
