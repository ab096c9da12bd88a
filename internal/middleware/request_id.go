package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the HTTP header carrying the request
	// correlation ID.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the key used to store the ID in the Echo
	// context.
	RequestIDKey = "request_id"
)

// maxRequestIDLength caps inbound correlation IDs. UUIDs are 36
// bytes; 64 leaves room for other upstream formats.
const maxRequestIDLength = 64

// RequestID returns an Echo middleware that ensures each request has
// a request ID.
//
// If the incoming request carries a well-formed X-Request-ID it is
// reused, otherwise a new UUID is generated. The ID is stored in the
// Echo context for internal access and echoed back on the response
// header so clients and proxies can correlate.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := sanitizeRequestID(c.Request().Header.Get(RequestIDHeader))
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set(RequestIDKey, requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// sanitizeRequestID returns the inbound ID only if it is safe to
// store, log, and echo back: non-empty, at most maxRequestIDLength
// bytes, and limited to token characters. Anything else is discarded
// so a client cannot push oversized or log-breaking values into the
// correlation chain; the caller falls back to a fresh UUID.
func sanitizeRequestID(id string) string {
	if id == "" || len(id) > maxRequestIDLength {
		return ""
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return ""
		}
	}
	return id
}

// GetRequestID retrieves the request ID from the Echo context,
// returning "" if the middleware did not run.
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
