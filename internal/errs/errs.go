// Package errs defines the application's HTTP error type and constructors.
//
// Handlers and services return *HTTPError values; the global error handler
// is the only place that turns them into a response envelope, so clients
// always receive a consistent {"success": false, "message": ...} body.
package errs
