package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/internal/session"
	"github.com/periodicapp/periodic/models"
)

func newTestSessionRepo(t *testing.T) (*SessionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &SessionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSessionLoad_Authenticated(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"user_id", "username", "expires_at"}).
		AddRow(7, "alice", time.Now().Add(time.Hour))

	mock.ExpectQuery("SELECT user_id, username, expires_at").
		WithArgs("sess-1").
		WillReturnRows(rows)

	rec, err := repo.Load(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != "sess-1" {
		t.Errorf("expected id sess-1, got %q", rec.ID)
	}
	if rec.User == nil || rec.User.ID != 7 || rec.User.Username != "alice" {
		t.Errorf("unexpected session user: %+v", rec.User)
	}
}

func TestSessionLoad_Unknown(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id, username, expires_at").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Load(context.Background(), "missing")
	if !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestSessionLoad_ExpiredIsDeleted(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"user_id", "username", "expires_at"}).
		AddRow(7, "alice", time.Now().Add(-time.Minute))

	mock.ExpectQuery("SELECT user_id, username, expires_at").
		WithArgs("stale").
		WillReturnRows(rows)
	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("stale").
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := repo.Load(context.Background(), "stale")
	if !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession for expired record, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expired session was not deleted: %v", err)
	}
}

func TestSessionSave_Upsert(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rec := session.Record{
		ID:   "sess-2",
		User: &models.SessionUser{ID: 7, Username: "alice"},
	}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs("sess-2", sql.NullInt64{Int64: 7, Valid: true}, sql.NullString{String: "alice", Valid: true}, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), rec, time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSessionDelete_UnknownIsNoop(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("deleting an unknown session must not fail: %v", err)
	}
}

func TestSessionDeleteExpired(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WillReturnResult(sqlmock.NewResult(0, 3))

	affected, err := repo.DeleteExpired(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected != 3 {
		t.Errorf("expected 3 deleted sessions, got %d", affected)
	}
}
