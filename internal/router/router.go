// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps paths to their corresponding
// handlers. Anything not registered here falls through to the global
// error handler's 404.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cvaldezr/welcome-api/internal/handler"
	"github.com/cvaldezr/welcome-api/internal/middleware"
	"github.com/cvaldezr/welcome-api/internal/server"
)

// New builds the Echo router for the given application container:
// global middleware, the error funnel, and all routes.
func New(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mws := middleware.NewMiddlewares(s)
	e.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	// Order matters: the request ID must exist before the context
	// enhancer builds the request-scoped logger, and both must run
	// before the request logger emits its line.
	e.Use(middleware.RequestID())
	e.Use(mws.ContextEnhancer.EnhanceContext())
	e.Use(mws.Global.RequestLogger())
	e.Use(mws.Global.Recover())
	e.Use(mws.Global.Secure())
	e.Use(mws.Global.CORS())
	e.Use(mws.Global.BodyLimit())

	if mws.Global.RateLimiterEnabled() {
		e.Use(mws.Global.RateLimiter())
	}

	h := handler.NewHandlers(s)
	registerRoutes(e, h)
	registerSystemRoutes(e, h)

	return e
}

// registerRoutes maps the application's business routes.
func registerRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/", h.Welcome.Welcome)
}
