package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvaldezr/welcome-api/internal/middleware"
)

func TestRequestIDGenerated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	next := func(c echo.Context) error {
		seen = middleware.GetRequestID(c)
		return nil
	}

	require.NoError(t, middleware.RequestID()(next)(c))

	_, err := uuid.Parse(seen)
	assert.NoError(t, err, "generated request ID must be a UUID")
	assert.Equal(t, seen, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRequestIDPassthrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "upstream-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return nil }
	require.NoError(t, middleware.RequestID()(next)(c))

	assert.Equal(t, "upstream-id", middleware.GetRequestID(c))
	assert.Equal(t, "upstream-id", rec.Header().Get(middleware.RequestIDHeader))
}

func TestRequestIDRejectsUnsafeValues(t *testing.T) {
	testCases := []struct {
		Name    string
		Inbound string
	}{
		{
			Name:    "oversized",
			Inbound: strings.Repeat("a", 65),
		},
		{
			Name:    "log_breaking_newline",
			Inbound: "abc\ndef",
		},
		{
			Name:    "non_token_characters",
			Inbound: `{"injected": true}`,
		},
		{
			Name:    "whitespace",
			Inbound: "id with spaces",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(middleware.RequestIDHeader, tc.Inbound)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			next := func(c echo.Context) error { return nil }
			require.NoError(t, middleware.RequestID()(next)(c))

			// The unsafe inbound value must be replaced with a UUID.
			seen := middleware.GetRequestID(c)
			assert.NotEqual(t, tc.Inbound, seen)
			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
		})
	}
}

func TestGetLoggerFallback(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	// Without the context enhancer the logger must still be usable.
	logger := middleware.GetLogger(c)
	require.NotNil(t, logger)
	logger.Info().Msg("discarded")
}
