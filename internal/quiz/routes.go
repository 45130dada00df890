package quiz

import (
	"github.com/go-chi/chi/v5"
)

// Routes serves /quizzes. The returned router stays open so attempt
// submission can be added under /{id}/attempts.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Generate)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Get("/{id}/export", h.Export)
	r.Delete("/{id}", h.Delete)
	return r
}
