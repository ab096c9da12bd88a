package errs

import "net/http"

// New creates an HTTPError with an explicit status and message.
func New(status int, message string) *HTTPError {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

// NewNotFoundError creates the 404 error served by the fallback
// handler. The message is the exact body clients are promised for
// unmatched routes.
func NewNotFoundError() *HTTPError {
	return New(http.StatusNotFound, "Not Found")
}

// NewInternalServerError creates a generic 500 error.
//
// The message is the bare status text on purpose: internal failure
// details belong in logs, not in client responses.
func NewInternalServerError() *HTTPError {
	return New(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
