// Package errs defines the application's HTTP error type.
//
// Every error that reaches a client is funneled through *HTTPError so
// responses keep a single, consistent wire shape:
//
//	{"error": "<message>"}
//
// The status code travels with the error but is never part of the
// body.
package errs

// HTTPError is the error type serialized to API clients.
//
// It implements the error interface, so handlers can return it
// directly and let the global error handler turn it into a response.
type HTTPError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// WithMessage returns a copy of the error with Message replaced,
// leaving the original usable as a template.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Status:  e.Status,
		Message: message,
	}
}
