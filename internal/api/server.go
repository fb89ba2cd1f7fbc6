package api

import (
	"net/http"
	"time"

	botapi "github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/api/bot"
	chatapi "github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/api/chat"
	contentapi "github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/api/content"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/api/docs"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/api/middleware"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	botHandler *botapi.Handler,
	chatHandler *chatapi.Handler,
	contentHandler *contentapi.Handler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(logger))               // Log requests
	r.Use(middleware.CORS)                         // Handle CORS
	r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]string{"status": "healthy"})
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	botapi.RegisterRoutes(r, botHandler)
	chatapi.RegisterRoutes(r, chatHandler)
	contentapi.RegisterRoutes(r, contentHandler)

	return r
}
