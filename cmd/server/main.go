// Command server runs the welcome-api HTTP service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cvaldezr/welcome-api/internal/config"
	"github.com/cvaldezr/welcome-api/internal/logger"
	"github.com/cvaldezr/welcome-api/internal/router"
	"github.com/cvaldezr/welcome-api/internal/server"
	"github.com/cvaldezr/welcome-api/internal/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config is broken; no structured logger exists yet.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg)

	srv := server.New(cfg, &log)
	srv.SetupHTTPServer(router.New(srv))

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	log.Info().
		Str("version", version.Version).
		Str("build_date", version.BuildDate).
		Msg("server started")

	// Block until the deployment environment asks us to stop.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
