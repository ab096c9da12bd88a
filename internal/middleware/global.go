package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/cvaldezr/welcome-api/internal/errs"
	"github.com/cvaldezr/welcome-api/internal/server"
)

// GlobalMiddlewares groups the middleware applied to every request,
// plus the global error handler. A struct so each middleware can read
// shared config from *server.Server.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware configured from server config.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// Recover returns Echo's panic recovery middleware, turning handler
// panics into 500 responses instead of crashing the process.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// BodyLimit caps request body size using the configured limit.
func (global *GlobalMiddlewares) BodyLimit() echo.MiddlewareFunc {
	return middleware.BodyLimit(global.server.Config.Server.BodyLimit)
}

// RateLimiter returns an in-memory, per-IP rate limiter using the
// configured rate and burst. Callers must check Enabled() first; a
// zero rate means rate limiting is off.
func (global *GlobalMiddlewares) RateLimiter() echo.MiddlewareFunc {
	cfg := global.server.Config.Server

	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = int(cfg.RateLimit)
	}
	// A fractional rate truncates to a zero burst, and a zero-burst
	// store admits nothing. The first request is never excess.
	if burst < 1 {
		burst = 1
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RateLimit),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
	})
}

// RateLimiterEnabled reports whether rate limiting is configured.
func (global *GlobalMiddlewares) RateLimiterEnabled() bool {
	return global.server.Config.Server.RateLimit > 0
}

// RequestLogger returns Echo's request logger middleware with a
// custom LogValuesFunc, producing one structured log line per request
// with severity based on the final status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// When a handler returns an error, the final status is
			// written later by the global error handler, so recover
			// it from the error type to avoid logging status=200 for
			// a failed request.
			if v.Error != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &httpErr) {
					statusCode = httpErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				}
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// GlobalErrorHandler is the final error funnel for the entire HTTP
// server. Every error returned by a handler or raised by the router
// ends up here and is translated into the API's response shape.
//
// Routing misses are normalized to the fallback 404: an unmatched
// path arrives as Echo's 404, and an unmatched method on a registered
// path arrives as Echo's 405; both are served as 404 {"error":"Not
// Found"}, matching the router contract of "anything not registered
// does not exist".
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			switch echoErr.Code {
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				httpErr = errs.NewNotFoundError()
			default:
				httpErr = errs.New(echoErr.Code, http.StatusText(echoErr.Code))
				if msg, ok := echoErr.Message.(string); ok {
					httpErr = httpErr.WithMessage(msg)
				}
			}
		} else {
			// Unknown error: serve a sanitized 500, keep the real
			// error for the logs.
			httpErr = errs.NewInternalServerError()
		}
	}

	logger := GetLogger(c)

	var e *zerolog.Event
	switch {
	case httpErr.Status >= 500:
		e = logger.Error().Stack().Err(originalErr)
	default:
		e = logger.Warn().Err(originalErr)
	}
	e.
		Int("status", httpErr.Status).
		Msg(httpErr.Message)

	if !c.Response().Committed {
		_ = c.JSON(httpErr.Status, httpErr)
	}
}
