package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/periodicapp/periodic/internal/config"
	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/models"
)

// Manager owns the session lifecycle: it resolves the current record from
// an incoming request, regenerates identifiers at the login trust boundary,
// persists authenticated records, and destroys records on logout.
//
// Manager is safe for concurrent use; all state is read-only after
// construction.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
	logger     *logger.Logger
}

// NewManager constructs a Manager on top of the given store using the
// cookie name and lifetime from cfg.
func NewManager(store Store, cfg config.Session, logger *logger.Logger) *Manager {
	logger.Debug().Str("cookie", cfg.CookieName).Dur("ttl", cfg.TTL).Msg("creating session manager")
	return &Manager{
		store:      store,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		logger:     logger,
	}
}

// FromRequest resolves the session record referenced by the request's
// session cookie.
//
// A missing cookie, or a cookie pointing at a record that no longer exists,
// yields an anonymous Record (the stale token is kept as the Record ID so
// that a later Regenerate can discard it). A store failure is returned as
// an error and is fatal for the request.
func (m *Manager) FromRequest(ctx context.Context, r *http.Request) (Record, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return Record{}, nil
	}

	rec, err := m.store.Load(ctx, cookie.Value)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return Record{ID: cookie.Value}, nil
		}
		return Record{}, fmt.Errorf("loading session failed: %w", err)
	}

	return rec, nil
}

// Regenerate discards the record behind cur (if any), issues a fresh
// identifier, and sets the session cookie on the response.
//
// The returned record is anonymous and not yet persisted; it becomes
// durable only through Authenticate. Regenerate must be called on every
// login attempt BEFORE the credential verdict is inspected, and a failure
// here is fatal for the request regardless of credential validity.
func (m *Manager) Regenerate(ctx context.Context, w http.ResponseWriter, cur Record) (Record, error) {
	log := logger.FromContext(ctx)

	if cur.ID != "" {
		if err := m.store.Delete(ctx, cur.ID); err != nil {
			log.Err(err).Msg("deleting previous session failed")
			return Record{}, fmt.Errorf("deleting previous session failed: %w", err)
		}
	}

	rec := Record{ID: uuid.NewString()}
	http.SetCookie(w, m.sessionCookie(rec.ID, int(m.ttl.Seconds())))

	return rec, nil
}

// Authenticate binds user to rec and persists the record, transitioning
// the session from Anonymous to Authenticated.
func (m *Manager) Authenticate(ctx context.Context, rec Record, user models.SessionUser) (Record, error) {
	rec.User = &user

	if err := m.store.Save(ctx, rec, m.ttl); err != nil {
		return Record{}, fmt.Errorf("saving session failed: %w", err)
	}

	return rec, nil
}

// Destroy deletes the record behind rec and expires the client cookie.
// The cookie is expired even when the store delete fails, so the client
// always loses its token; the store failure is still reported to the
// caller as a server error.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, rec Record) error {
	http.SetCookie(w, m.sessionCookie("", -1))

	if rec.ID == "" {
		return nil
	}

	if err := m.store.Delete(ctx, rec.ID); err != nil {
		return fmt.Errorf("destroying session failed: %w", err)
	}

	return nil
}

// sessionCookie builds the session cookie with the hardening attributes
// shared by every Set-Cookie this package emits.
func (m *Manager) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
