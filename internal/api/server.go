// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/prachasan/heritage-api/internal/content/category"
	"github.com/prachasan/heritage-api/internal/content/creative"
	"github.com/prachasan/heritage-api/internal/content/dashboard"
	"github.com/prachasan/heritage-api/internal/content/ethnic"
	"github.com/prachasan/heritage-api/internal/content/policy"
	"github.com/prachasan/heritage-api/internal/content/tradition"
	"github.com/prachasan/heritage-api/internal/platform/config"
	"github.com/prachasan/heritage-api/internal/platform/constants"
	"github.com/prachasan/heritage-api/internal/platform/middleware"
	"github.com/prachasan/heritage-api/internal/platform/sec"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here; no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler. It always returns 200 while the
	// process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Tradition handles the cultural-tradition records.
	Tradition *tradition.Handler

	// Creative handles the creative-activity records.
	Creative *creative.Handler

	// Ethnic handles the ethnic-group records.
	Ethnic *ethnic.Handler

	// Policy handles the public-policy records.
	Policy *policy.Handler

	// Category serves the reference category trees with counts.
	Category *category.Handler

	// Dashboard serves the cross-kind aggregates.
	Dashboard *dashboard.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier sec.TokenVerifier, denylist sec.Denylist, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier, denylist))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/traditions", h.Tradition.Routes())
		api.Mount("/creative-activities", h.Creative.Routes())
		api.Mount("/ethnic-groups", h.Ethnic.Routes())
		api.Mount("/public-policies", h.Policy.Routes())
		api.Mount("/categories", h.Category.Routes())
		api.Mount("/dashboard", h.Dashboard.Routes())
	})

	// # Static Assets
	// Uploaded images and documents served from the public tree.
	fileServer := http.StripPrefix(cfg.UploadURLPrefix, http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get(cfg.UploadURLPrefix+"/*", fileServer.ServeHTTP)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
