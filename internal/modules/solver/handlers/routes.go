package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all solver routes under /solver
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/solver", func(r chi.Router) {
		r.Get("/solve", h.HandleSolveQuery)
		r.Post("/solve", h.HandleSolve)
		r.Get("/random", h.HandleRandom)
		r.Get("/code", h.HandleCode)
		r.Get("/strategies", h.HandleStrategies)
	})
}
