package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/notes-api/internal/handler"
	"github.com/deppfellow/notes-api/static"
)

func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
	r.StaticFS("/static", static.FS)
}
