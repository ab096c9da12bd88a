package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvaldezr/welcome-api/internal/config"
	"github.com/cvaldezr/welcome-api/internal/handler"
)

func TestCheckHealth(t *testing.T) {
	srv := newTestServer(func(cfg *config.Config) {
		cfg.Primary.Env = "staging"
	})
	h := handler.NewHealthHandler(srv)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CheckHealth(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/json")

	var body handler.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "staging", body.Environment)
	assert.False(t, body.Timestamp.IsZero())
	assert.NotEmpty(t, body.Uptime)
	assert.NotEmpty(t, body.Version)
}
