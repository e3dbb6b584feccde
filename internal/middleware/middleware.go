// Package middleware holds the global and route-specific Echo middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request ids, request logging, tracing, CORS, rate limiting and panic
// recovery, and own the global error handler that writes every error
// envelope.
package middleware
