package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cvaldezr/welcome-api/internal/middleware"
	"github.com/cvaldezr/welcome-api/internal/server"
	"github.com/cvaldezr/welcome-api/internal/version"
)

// HealthHandler exposes a system endpoint that Kubernetes probes,
// load balancers, and uptime monitors use to verify the service is
// alive. The service has no external dependencies, so health reduces
// to "the process is serving requests".
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared
// app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// HealthResponse is the body served by the status endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
	BuildDate   string    `json:"build_date"`
}

// CheckHealth handles GET /status, always reporting healthy along
// with environment and build metadata.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c)

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Uptime:      h.server.Uptime().Round(time.Second).String(),
		Version:     version.Version,
		BuildDate:   version.BuildDate,
	}

	logger.Debug().
		Str("uptime", response.Uptime).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
