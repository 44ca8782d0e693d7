package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// setupAPIRoutes sets up the public listing API
func setupAPIRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)

		// Project endpoints
		r.Get("/api/projects", handlers.projectHandler.listProjects())
		r.Get("/api/projects/{projectID}", handlers.projectHandler.getProject())
		r.Post("/api/projects", handlers.projectHandler.createProject())

		// Builder endpoints
		r.Post("/api/builders", handlers.builderHandler.createBuilder())
	})
}

func serviceBanner(startupTime time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"message":   "Gharkhoj API Server",
			"version":   "1.0.0",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(startupTime).String(),
		})
	}
}
