package api

import (
	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/meta", h.Meta)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.CreateSession)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Delete("/", h.DeleteSession)
			r.Post("/search", h.Search)
			r.Get("/results", h.Results)
			r.Delete("/results", h.ClearResults)
			r.Post("/saved/{recordID}", h.ToggleSave)
			r.Get("/saved", h.Saved)
			r.Delete("/saved", h.ClearSaved)
			r.Get("/export", h.Export)
		})
	})

	return r
}
