package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cvaldezr/welcome-api/internal/config"
	"github.com/cvaldezr/welcome-api/internal/server"
)

// WelcomeHandler serves the root route. The payload is fixed per
// deployment: a JSON welcome message by default, or a plain-text
// greeting when app.response_format is "text".
type WelcomeHandler struct {
	Handler
}

// NewWelcomeHandler constructs a WelcomeHandler with access to shared
// app dependencies.
func NewWelcomeHandler(s *server.Server) *WelcomeHandler {
	return &WelcomeHandler{
		Handler: NewHandler(s),
	}
}

// WelcomeResponse is the JSON body served by the root route.
type WelcomeResponse struct {
	Message string `json:"message"`
}

// Welcome handles GET /.
//
// The response depends only on config, never on the request, so
// repeated identical requests yield byte-identical responses.
func (h *WelcomeHandler) Welcome(c echo.Context) error {
	app := h.server.Config.App

	if app.ResponseFormat == config.FormatText {
		return c.String(http.StatusOK, app.TextBody)
	}

	return c.JSON(http.StatusOK, WelcomeResponse{
		Message: app.WelcomeMessage,
	})
}
