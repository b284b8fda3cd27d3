// Package session implements the server-side session authority: an opaque
// cookie token correlated with a persisted session record that is either
// anonymous or carries an authenticated identity.
//
// The trust-boundary rule of the package is that the session identifier is
// regenerated on every login attempt before the credential verdict is
// inspected, so a token issued to an anonymous (or attacker-supplied)
// session can never survive into an authenticated one.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/periodicapp/periodic/models"
)

// ErrNoSession is returned by [Store.Load] when no record exists for the
// given identifier, either because it never existed or because it expired.
var ErrNoSession = errors.New("no session was found")

// Record is a single session. A Record with a nil User is anonymous;
// anonymous records are never persisted.
type Record struct {
	// ID is the opaque token held by the client in the session cookie.
	ID string

	// User is the authenticated identity, nil for anonymous sessions.
	// It never carries the password hash.
	User *models.SessionUser
}

// Authenticated reports whether the record carries an identity.
func (r Record) Authenticated() bool {
	return r.User != nil
}

// Store is the persistence contract for session records. Implementations
// are keyed by [Record.ID] and must treat an unknown id in Delete as a
// successful no-op.
type Store interface {
	// Load retrieves the record stored under id.
	// Returns ErrNoSession when the record is absent or expired.
	Load(ctx context.Context, id string) (Record, error)

	// Save persists rec under rec.ID with the given lifetime, replacing
	// any previous record with the same id.
	Save(ctx context.Context, rec Record, ttl time.Duration) error

	// Delete removes the record stored under id.
	Delete(ctx context.Context, id string) error
}
