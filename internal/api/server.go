// Copyright (c) 2026 Randfin. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

Routing note: the admin dashboard and the comment/salary widgets were built
against unversioned paths (/api/admin/..., /api/comments,
/api/salary-data/calculate), so those are mounted verbatim alongside the
versioned /api/v1 tree.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/randfin/randfin/internal/auth"
	"github.com/randfin/randfin/internal/calc/duty"
	"github.com/randfin/randfin/internal/calc/incometax"
	"github.com/randfin/randfin/internal/calc/invest"
	"github.com/randfin/randfin/internal/calc/loan"
	"github.com/randfin/randfin/internal/calc/salary"
	"github.com/randfin/randfin/internal/content/article"
	"github.com/randfin/randfin/internal/content/category"
	"github.com/randfin/randfin/internal/content/comment"
	"github.com/randfin/randfin/internal/content/media"
	"github.com/randfin/randfin/internal/platform/config"
	"github.com/randfin/randfin/internal/platform/constants"
	"github.com/randfin/randfin/internal/platform/middleware"
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
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles admin authentication (login, refresh, logout).
	Auth *auth.Handler

	// Calculator endpoints.
	IncomeTax *incometax.Handler
	Loan      *loan.Handler
	Invest    *invest.Handler
	Duty      *duty.Handler
	Salary    *salary.Handler

	// Content library and engagement.
	Category *category.Handler
	Article  *article.Handler
	Comment  *comment.Handler
	Media    *media.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Dashboard & Widget API
	// Exact paths the admin dashboard and site widgets call.
	r.Route("/api", func(api chi.Router) {
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireAuth)

			admin.Route("/categories", h.Category.RegisterRoutes)
			admin.Route("/articles", h.Article.RegisterAdminRoutes)
			admin.Route("/media", h.Media.RegisterRoutes)
			admin.Route("/comments", h.Comment.RegisterAdminRoutes)
		})

		api.Route("/categories", h.Category.RegisterPublicRoutes)
		api.Route("/comments", h.Comment.RegisterPublicRoutes)
		api.Route("/salary-data", h.Salary.RegisterRoutes)
	})

	// # Versioned Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", h.Auth.RegisterRoutes)
		api.Route("/articles", h.Article.RegisterPublicRoutes)

		api.Route("/calculators", func(calc chi.Router) {
			calc.Route("/income-tax", h.IncomeTax.RegisterRoutes)
			calc.Route("/bond", h.Loan.RegisterRoutes)
			calc.Route("/investment", h.Invest.RegisterRoutes)
			calc.Route("/salary", h.Salary.RegisterRoutes)
			h.Duty.RegisterRoutes(calc)
		})
	})

	// # Static Media
	// Uploaded files are served straight off disk.
	fileServer := http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.MediaDir)))
	r.Get("/media/*", fileServer.ServeHTTP)

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
