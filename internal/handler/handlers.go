package handler

import (
	"github.com/cvaldezr/welcome-api/internal/server"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Welcome *WelcomeHandler // Welcome serves the root route.
	Health  *HealthHandler  // Health serves the system status endpoint.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Welcome: NewWelcomeHandler(s),
		Health:  NewHealthHandler(s),
	}
}
