// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request correlation, request logging, CORS, rate limiting, and
// panic recovery. The package also owns the global error handler
// that converts every error into the API's single response shape.
package middleware
