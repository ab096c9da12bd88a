// Package handler is the HTTP layer: the first entry point after the
// router. Handlers read request data, produce responses, and nothing
// else; there is no service layer beneath them because the API is
// stateless.
package handler

import (
	"github.com/cvaldezr/welcome-api/internal/server"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to reach config and the
// logger via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. It returns the struct by
// value; copying is cheap since it only carries a pointer.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}
