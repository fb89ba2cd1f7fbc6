package bot

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers bot routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/bots", func(r chi.Router) {
		r.Post("/", h.CreateBot)
		r.Get("/", h.ListBots)

		r.Route("/{bot_id}", func(r chi.Router) {
			r.Get("/", h.GetBot)
			r.Put("/", h.UpdateBot)
			r.Delete("/", h.DeleteBot)
		})
	})
}
