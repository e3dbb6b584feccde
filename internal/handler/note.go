package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/notes-api/internal/model"
	"github.com/deppfellow/notes-api/internal/server"
)

const (
	messageNoteUpdated = "Note updated successfully"
	messageNoteDeleted = "Note deleted successfully"
)

// NoteService is the business layer the note endpoints call into.
type NoteService interface {
	Create(ctx context.Context, params model.CreateNoteParams) (*model.Note, error)
	List(ctx context.Context) ([]model.Note, error)
	Get(ctx context.Context, id string) (*model.Note, error)
	Update(ctx context.Context, id string, params model.UpdateNoteParams) (*model.Note, error)
	Delete(ctx context.Context, id string) (*model.Note, error)
}

// NoteResponse is the success envelope for single-note operations.
type NoteResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    *model.Note `json:"data"`
}

// NoteListResponse is the success envelope for listing.
type NoteListResponse struct {
	Success bool         `json:"success"`
	Count   int          `json:"count"`
	Data    []model.Note `json:"data"`
}

func (r *NoteListResponse) ItemCount() int {
	return r.Count
}

type NoteHandler struct {
	Handler
	service NoteService
}

func NewNoteHandler(s *server.Server, service NoteService) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(s),
		service: service,
	}
}

func (h *NoteHandler) CreateNote(c echo.Context, req *CreateNoteRequest) (*NoteResponse, error) {
	note, err := h.service.Create(c.Request().Context(), req.Params())
	if err != nil {
		return nil, err
	}

	return &NoteResponse{Success: true, Data: note}, nil
}

func (h *NoteHandler) ListNotes(c echo.Context, _ *ListNotesRequest) (*NoteListResponse, error) {
	notes, err := h.service.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	if notes == nil {
		notes = []model.Note{}
	}

	return &NoteListResponse{Success: true, Count: len(notes), Data: notes}, nil
}

func (h *NoteHandler) GetNote(c echo.Context, req *NoteIDRequest) (*NoteResponse, error) {
	note, err := h.service.Get(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}

	return &NoteResponse{Success: true, Data: note}, nil
}

func (h *NoteHandler) UpdateNote(c echo.Context, req *UpdateNoteRequest) (*NoteResponse, error) {
	note, err := h.service.Update(c.Request().Context(), req.ID, req.Params())
	if err != nil {
		return nil, err
	}

	return &NoteResponse{Success: true, Message: messageNoteUpdated, Data: note}, nil
}

func (h *NoteHandler) DeleteNote(c echo.Context, req *NoteIDRequest) (*NoteResponse, error) {
	note, err := h.service.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}

	return &NoteResponse{Success: true, Message: messageNoteDeleted, Data: note}, nil
}
