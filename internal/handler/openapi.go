package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/notes-api/internal/server"
	"github.com/deppfellow/notes-api/static"
)

// OpenAPIHandler serves the interactive API docs page.
type OpenAPIHandler struct {
	Handler
	docs fs.FS
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		docs:    static.FS,
	}
}

// ServeOpenAPIUI writes the embedded openapi.html. Caching is disabled so
// updated docs show up immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	page, err := fs.ReadFile(h.docs, "openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	return c.HTMLBlob(http.StatusOK, page)
}
