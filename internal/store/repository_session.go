package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/internal/session"
	"github.com/periodicapp/periodic/models"
)

// SessionRepository is the PostgreSQL-backed [session.Store]. Session
// records live in the "sessions" table provisioned by the migrations, so a
// single database serves both domain data and session state (the default
// deployment; a Redis store can be selected by configuration instead).
//
// Expiry is enforced on read: a loaded record whose expires_at has passed
// is deleted and reported as missing. A background sweeper additionally
// calls [SessionRepository.DeleteExpired] to keep the table from growing.
type SessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) *SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &SessionRepository{
		db:     db,
		logger: logger,
	}
}

// Load implements [session.Store].
func (r *SessionRepository) Load(ctx context.Context, id string) (session.Record, error) {
	log := logger.FromContext(ctx)

	var (
		userID    sql.NullInt64
		username  sql.NullString
		expiresAt time.Time
	)

	row := r.db.QueryRowContext(ctx, loadSession, id)
	if err := row.Scan(&userID, &username, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return session.Record{}, session.ErrNoSession
		}
		log.Err(err).Str("func", "*SessionRepository.Load").Msg("error: unexpected DB error")
		return session.Record{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if time.Now().After(expiresAt) {
		if err := r.Delete(ctx, id); err != nil {
			log.Err(err).Str("func", "*SessionRepository.Load").Msg("error: deleting expired session failed")
		}
		return session.Record{}, session.ErrNoSession
	}

	rec := session.Record{ID: id}
	if userID.Valid {
		rec.User = &models.SessionUser{
			ID:       userID.Int64,
			Username: username.String,
		}
	}

	return rec, nil
}

// Save implements [session.Store] as an upsert keyed by the session id.
func (r *SessionRepository) Save(ctx context.Context, rec session.Record, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	var (
		userID   sql.NullInt64
		username sql.NullString
	)
	if rec.User != nil {
		userID = sql.NullInt64{Int64: rec.User.ID, Valid: true}
		username = sql.NullString{String: rec.User.Username, Valid: true}
	}

	if _, err := r.db.ExecContext(ctx, saveSession, rec.ID, userID, username, time.Now().Add(ttl)); err != nil {
		log.Err(err).Str("func", "*SessionRepository.Save").Msg("error: unexpected DB error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// Delete implements [session.Store]. Deleting an unknown id is a no-op.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession, id); err != nil {
		log.Err(err).Str("func", "*SessionRepository.Delete").Msg("error: unexpected DB error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteExpired removes every session whose expiry has passed and returns
// how many rows were deleted. Called periodically by the session sweeper.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, deleteExpiredSessions)
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}
