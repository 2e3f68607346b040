package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forkline/restaurants-core/internal/docs"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Health check (no auth required)
	r.Get("/health", s.handleHealth)

	// Interactive API documentation (read-only, no auth required)
	if s.docsCfg.Enabled {
		r.Handle("/docs/*", http.StripPrefix("/docs", docs.Handler()))
		r.Handle("/docs", http.RedirectHandler("/docs/", http.StatusMovedPermanently))
	}

	// Restaurant resource, behind the Basic-auth gate
	r.Route("/api/restaurants", func(r chi.Router) {
		r.Use(s.basicAuthMiddleware)

		r.Post("/", s.handleCreateRestaurant)
		r.Get("/", s.handleListRestaurants)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetRestaurant)
			r.Put("/", s.handleUpdateRestaurant)
			r.Delete("/", s.handleDeleteRestaurant)
		})
	})

	// Any unmatched path renders a generic JSON not-found
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeNotFound(w, "not found")
	})

	return r
}

// handleHealth returns the server health status.
//
// When a store checker was supplied it is consulted on every call, so a
// lost database connection surfaces here as a 503 instead of only on the
// next resource request.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		if err := s.store.HealthCheck(r.Context()); err != nil {
			s.logger.Error("store health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status":  "degraded",
				"version": s.version,
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
