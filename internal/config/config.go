// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), maps them into structured Go types, and
// validates that the resulting values are sane so the app fails fast
// on bad configuration.
//
// Env vars use the WELCOME_ prefix and a double underscore as the
// nesting separator:
//
//	WELCOME_SERVER__PORT            -> server.port
//	WELCOME_APP__WELCOME_MESSAGE    -> app.welcome_message
//	WELCOME_LOGGING__LEVEL          -> logging.level
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process
	// environment before any env vars are read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "WELCOME_"

// Response format values accepted by app.response_format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config is the root configuration object for the application.
type Config struct {
	Primary Primary       `koanf:"primary" validate:"required"`
	Server  ServerConfig  `koanf:"server" validate:"required"`
	App     AppConfig     `koanf:"app" validate:"required"`
	Logging LoggingConfig `koanf:"logging" validate:"required"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and the health endpoint.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
	BodyLimit          string   `koanf:"body_limit" validate:"required"`

	// RateLimit is requests per second per client IP. Zero disables
	// rate limiting entirely.
	RateLimit      float64 `koanf:"rate_limit" validate:"min=0"`
	RateLimitBurst int     `koanf:"rate_limit_burst" validate:"min=0"`
}

// AppConfig controls the payload served by the root route.
//
// ResponseFormat selects between the JSON welcome message and the
// plain-text body. JSON is the canonical default; the text variant
// exists for deployments that expect the bare greeting.
type AppConfig struct {
	WelcomeMessage string `koanf:"welcome_message" validate:"required"`
	ResponseFormat string `koanf:"response_format" validate:"required,oneof=json text"`
	TextBody       string `koanf:"text_body" validate:"required"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level" validate:"required"`

	// Format selects the log output format: "json" or "console".
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// Load builds the application config.
//
// It starts from defaults, overlays WELCOME_-prefixed env vars via
// koanf, and validates the result with go-playground/validator. An
// error here means the process should not start.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	// Unmarshal on top of the defaults so only provided keys override.
	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
