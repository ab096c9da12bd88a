// Package server defines the core Server struct that composes the
// app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - the root logger
//   - the http.Server
//
// and provides the start/shutdown logic to run the application
// cleanly.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/cvaldezr/welcome-api/internal/config"
)

// Server is the application container that holds shared resources.
// It is not the HTTP server itself; it carries the config, the
// logger, and an internal *http.Server used to listen and serve
// requests.
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	httpServer *http.Server
	startedAt  time.Time
}

// New constructs a Server. It does not start listening; that is done
// by SetupHTTPServer followed by Start.
func New(cfg *config.Config, logger *zerolog.Logger) *Server {
	return &Server{
		Config:    cfg,
		Logger:    logger,
		startedAt: time.Now(),
	}
}

// SetupHTTPServer configures the internal net/http server with the
// given handler (the Echo router) and the timeouts from config.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Timeouts protect against slow clients holding connections.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops or
// fails, and requires SetupHTTPServer to have been called first.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, letting in-flight
// requests finish until the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	return nil
}

// Uptime reports how long the container has existed. Exposed through
// the health endpoint.
func (s *Server) Uptime() time.Duration {
	return time.Since(s.startedAt)
}
