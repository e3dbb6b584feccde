package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/notes-api/internal/errs"
	"github.com/deppfellow/notes-api/internal/server"
	"github.com/deppfellow/notes-api/internal/sqlerr"
)

// MessageRouteNotFound is returned for any path no route matches.
const MessageRouteNotFound = "Route not found"

type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger writes one access log line per request, at a level chosen
// from the final status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// The error handler has not run yet when this fires, so the
			// status is taken from the error itself.
			if v.Error != nil {
				statusCode = statusOf(v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the only place error responses are written.
//
// Every failure becomes {success:false, message}. Data layer errors go
// through sqlerr.HandleError; outside production a 500 carries the raw
// error text, in production the generic status text.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err
	status, message := global.resolve(err)

	logger := GetLogger(c)

	var e *zerolog.Event
	if status >= http.StatusInternalServerError {
		e = logger.Error().Stack()
	} else {
		e = logger.Warn()
	}
	e.Err(originalErr).
		Int("status", status).
		Msg(message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}

	_ = c.JSON(status, errs.Response{
		Success: false,
		Message: message,
	})
}

func (global *GlobalMiddlewares) resolve(err error) (int, string) {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, httpErr.Message
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		// An unknown method on a known path is reported like an unknown path.
		if echoErr.Code == http.StatusNotFound || echoErr.Code == http.StatusMethodNotAllowed {
			return http.StatusNotFound, MessageRouteNotFound
		}
		if msg, ok := echoErr.Message.(string); ok {
			return echoErr.Code, msg
		}
		return echoErr.Code, http.StatusText(echoErr.Code)
	}

	if !errors.As(sqlerr.HandleError(err), &httpErr) {
		httpErr = errs.NewInternalServerError()
	}
	if httpErr.Status >= http.StatusInternalServerError && !global.server.Config.Primary.IsProduction() {
		return httpErr.Status, err.Error()
	}
	return httpErr.Status, httpErr.Message
}

func statusOf(err error) int {
	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status
	case errors.As(err, &echoErr):
		return echoErr.Code
	default:
		return http.StatusInternalServerError
	}
}
