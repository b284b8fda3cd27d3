package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withSession)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Get("/api/elements", h.listElements)
		r.Get("/api/queries/elements", h.querySymbols)
		r.Get("/api/queries/liquid", h.queryLiquid)
		r.Get("/api/queries/record", h.queryRecord)
	})

	// routes behind an authenticated session
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Post("/api/logout", h.logout)
		r.Post("/api/elements", h.createElement)
		r.Put("/api/elements/{number}", h.updateElement)
		r.Delete("/api/elements/{number}", h.deleteElement)
	})

	return router
}
