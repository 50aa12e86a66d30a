// Package router provides HTTP routing configuration using Chi.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sealkit/sealkit/internal/api/handler"
	"github.com/sealkit/sealkit/internal/api/middleware"
)

// Config holds router configuration.
type Config struct {
	Version string
}

// New creates a new Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := handler.New(cfg.Version)

	// Health endpoint (always enabled)
	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/digest", h.Digest)
		r.Post("/hmac", h.HMAC)

		r.Route("/keys", func(r chi.Router) {
			r.Post("/", h.KeyGen)
			r.Post("/fingerprint", h.Fingerprint)
		})

		r.Route("/certificates", func(r chi.Router) {
			r.Post("/fingerprint", h.CertFingerprint)
		})

		r.Post("/sign", h.Sign)
	})

	return r
}
