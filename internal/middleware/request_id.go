package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	RequestIDHeader = echo.HeaderXRequestID

	// RequestIDKey is the echo.Context key holding the request id.
	RequestIDKey = "request_id"
)

// RequestID propagates X-Request-ID, generating a UUID when the client sent
// none, and stores it under RequestIDKey.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		TargetHeader: RequestIDHeader,
		Generator:    uuid.NewString,
		RequestIDHandler: func(c echo.Context, requestID string) {
			c.Set(RequestIDKey, requestID)
		},
	})
}

func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
