// Package web exposes the calculators over HTTP as a small JSON API.
package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/lvcalc/internal/config"
)

// Server is the HTTP server for the calculator API.
type Server struct {
	cfg    *config.Config
	router *chi.Mux
	server *http.Server
}

// NewServer creates a new Server instance.
func NewServer(cfg *config.Config) *Server {
	sc := cfg.Server
	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	s.server = &http.Server{
		Addr:         sc.Addr(),
		Handler:      s.router,
		ReadTimeout:  sc.ReadTimeout.Duration,
		WriteTimeout: sc.WriteTimeout.Duration,
		IdleTimeout:  sc.IdleTimeout.Duration,
	}

	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout.Duration))
	s.router.Use(securityHeaders)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		// Expression and calculus
		r.Post("/eval", s.handleEval)
		r.Post("/derivative", s.handleDerivative)
		r.Post("/limit", s.handleLimit)
		r.Post("/integral", s.handleIntegral)

		// Matrix and statistics
		r.Post("/matrix", s.handleMatrix)
		r.Post("/statistics", s.handleStatistics)
		r.Post("/stddev", s.handleStdDev)

		// Finance
		r.Post("/emi", s.handleEMI)
		r.Post("/amortization", s.handleAmortization)
		r.Post("/compound", s.handleCompound)
		r.Post("/sip", s.handleSIP)

		// Health
		r.Post("/bmi", s.handleBMI)
		r.Post("/bac", s.handleBAC)
		r.Post("/whr", s.handleWaistToHip)

		// Conversions
		r.Post("/roman", s.handleRoman)
		r.Post("/base", s.handleBase)
	})
}

// Start listens on the configured address until Shutdown is called.
// It returns http.ErrServerClosed after Shutdown, including when Shutdown
// ran before Start.
func (s *Server) Start() error {
	slog.Info("server starting", "addr", s.server.Addr)

	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}
