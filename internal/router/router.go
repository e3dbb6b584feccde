// Package router builds the Echo instance: global middleware, the error
// handler, system routes and the versioned notes API.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/notes-api/internal/handler"
	"github.com/deppfellow/notes-api/internal/middleware"
	"github.com/deppfellow/notes-api/internal/server"
)

// NewRouter wires middleware in order: request id, New Relic, tracing
// attributes, request scoped logger, access log, recovery, security
// headers, CORS.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1", middlewares.RateLimit.Limit())
	registerNoteRoutes(v1, h)

	return router
}

func registerNoteRoutes(g *echo.Group, h *handler.Handlers) {
	notes := g.Group("/notes")

	notes.POST("", handler.Handle(h.Note.Handler, h.Note.CreateNote, http.StatusCreated))
	notes.GET("", handler.Handle(h.Note.Handler, h.Note.ListNotes, http.StatusOK))
	notes.GET("/:id", handler.Handle(h.Note.Handler, h.Note.GetNote, http.StatusOK))
	notes.PATCH("/:id", handler.Handle(h.Note.Handler, h.Note.UpdateNote, http.StatusOK))
	notes.PUT("/:id", handler.Handle(h.Note.Handler, h.Note.UpdateNote, http.StatusOK))
	notes.DELETE("/:id", handler.Handle(h.Note.Handler, h.Note.DeleteNote, http.StatusOK))
}
