// Package handler is the HTTP layer, the first entry point after the router.
//
// It binds requests, validates them through the validation package and
// calls the service layer, translating results into response envelopes.
package handler

import (
	"github.com/deppfellow/notes-api/internal/server"
	"github.com/deppfellow/notes-api/internal/service"
)

// Handlers groups all HTTP handlers so the router receives a single value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Note    *NoteHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Note:    NewNoteHandler(s, services.Note),
	}
}
