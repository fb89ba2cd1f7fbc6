package chat

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers chat routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/bots/{bot_id}/chat", h.Chat)

	r.Route("/chats/{conversation_id}", func(r chi.Router) {
		r.Get("/export", h.ExportTranscript)
	})
}
