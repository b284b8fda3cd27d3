package http

import (
	"context"
	"net/http"

	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/internal/utils"
)

// withSession resolves the session record referenced by the request cookie
// and stores it in the request context. Requests without a cookie, or with
// a cookie pointing at a dead session, continue anonymously; only a store
// failure aborts the request.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		rec, err := h.sessions.FromRequest(ctx, r)
		if err != nil {
			log.Err(err).Msg("resolving session failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx = context.WithValue(ctx, utils.SessionCtxKey, rec)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSession rejects requests whose session record is not bound to a
// user. It must run after withSession.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec, ok := utils.GetSessionFromContext(r.Context())
		if !ok || !rec.Authenticated() {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
