// Package api implements the HTTP API for station analysis.
//
// The server exposes three endpoints:
//
//	GET  /healthz       - liveness probe with build information
//	POST /api/generate  - analyze a station submitted as JSON
//	POST /api/upload    - analyze an uploaded railML document
//
// Both analysis endpoints run the shared pipeline.Runner, so responses are
// cached with the same keys the CLI uses.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/railkit/railsignal/pkg/pipeline"
)

// Server handles HTTP requests for station analysis.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger

	// MaxUploadBytes bounds railML upload size. Defaults to 10 MiB.
	MaxUploadBytes int64
}

// NewServer creates a server backed by the given pipeline runner.
// A nil logger falls back to the default logger.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner:         runner,
		logger:         logger,
		MaxUploadBytes: 10 << 20,
	}
}

// Router builds the chi router with all middleware and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestIDMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.loggingMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Post("/upload", s.handleUpload)
	})

	return r
}

// ListenAndServe runs the server until the context is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
