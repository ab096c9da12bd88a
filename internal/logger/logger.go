// Package logger configures the application's structured logging.
//
// It uses zerolog and derives the level and output format from the
// logging block of the application config.
package logger

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/cvaldezr/welcome-api/internal/config"
)

// New builds the application's root logger from config.
//
// Format "console" writes human-friendly output to stderr for local
// development; anything else produces JSON, which is what log
// pipelines expect in deployed environments. An unknown level falls
// back to info rather than failing startup.
func New(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Logging.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", "welcome-api").
		Str("env", cfg.Primary.Env).
		Logger()
}
