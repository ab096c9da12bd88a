package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvaldezr/welcome-api/internal/config"
	"github.com/cvaldezr/welcome-api/internal/handler"
	"github.com/cvaldezr/welcome-api/internal/server"
)

func newTestServer(mutate func(*config.Config)) *server.Server {
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	logger := zerolog.Nop()
	return server.New(cfg, &logger)
}

func TestWelcomeJSON(t *testing.T) {
	srv := newTestServer(nil)
	h := handler.NewWelcomeHandler(srv)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Welcome(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/json")
	assert.JSONEq(t, `{"message": "Welcome to Node.js App"}`, rec.Body.String())
}

func TestWelcomeText(t *testing.T) {
	srv := newTestServer(func(cfg *config.Config) {
		cfg.App.ResponseFormat = config.FormatText
	})
	h := handler.NewWelcomeHandler(srv)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Welcome(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
	assert.Equal(t, "Hello World", rec.Body.String())
}

func TestWelcomeConfiguredMessage(t *testing.T) {
	srv := newTestServer(func(cfg *config.Config) {
		cfg.App.WelcomeMessage = "Welcome to welcome-api"
	})
	h := handler.NewWelcomeHandler(srv)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Welcome(e.NewContext(req, rec)))

	assert.JSONEq(t, `{"message": "Welcome to welcome-api"}`, rec.Body.String())
}
