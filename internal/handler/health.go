package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/notes-api/internal/middleware"
	"github.com/deppfellow/notes-api/internal/server"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// CheckHealth pings the configured dependencies.
//
// The database is required: when it fails the endpoint answers 503.
// Redis only backs the rate limiter, which fails open, so a redis failure
// is reported but the service stays healthy.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      statusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]CheckResult),
	}

	checks := h.server.Config.Observability.HealthChecks
	timeout := checks.Timeout

	if checks.Enabled && checks.Has("database") && h.server.DB != nil {
		result := h.runCheck(c.Request().Context(), "database", timeout, h.server.DB.Pool.Ping)
		response.Checks["database"] = result
		if result.Status != statusHealthy {
			response.Status = statusUnhealthy
		}
	}

	if checks.Enabled && checks.Has("redis") && h.server.Redis != nil {
		response.Checks["redis"] = h.runCheck(c.Request().Context(), "redis", timeout, func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if response.Status != statusHealthy {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthCheckError(map[string]any{
			"check_type":        "overall",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) runCheck(parent context.Context, name string, timeout time.Duration, ping func(context.Context) error) CheckResult {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		h.server.Logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		h.recordHealthCheckError(map[string]any{
			"check_type":       name,
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return CheckResult{
			Status:       statusUnhealthy,
			ResponseTime: elapsed.String(),
			Error:        err.Error(),
		}
	}

	return CheckResult{Status: statusHealthy, ResponseTime: elapsed.String()}
}

func (h *HealthHandler) recordHealthCheckError(attrs map[string]any) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	attrs["operation"] = "health_check"
	app.RecordCustomEvent("HealthCheckError", attrs)
}
