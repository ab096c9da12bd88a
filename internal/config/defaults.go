package config

// Default returns a config that lets the service run with an empty
// environment. Every value can be overridden via WELCOME_-prefixed
// env vars.
//
// The default port matches the container interface the service is
// deployed behind.
func Default() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        15,
			WriteTimeout:       15,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			BodyLimit:          "1M",

			// Rate limiting is off unless explicitly configured.
			RateLimit:      0,
			RateLimitBurst: 0,
		},
		App: AppConfig{
			WelcomeMessage: "Welcome to Node.js App",
			ResponseFormat: FormatJSON,
			TextBody:       "Hello World",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
