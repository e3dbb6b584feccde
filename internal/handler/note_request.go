package handler

import (
	"github.com/deppfellow/notes-api/internal/model"
	"github.com/deppfellow/notes-api/internal/service"
	"github.com/deppfellow/notes-api/internal/validation"
)

// CreateNoteRequest is the body of POST /api/v1/notes.
//
// Empty strings count as missing.
type CreateNoteRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (r *CreateNoteRequest) Validate() error {
	return validation.WithMessage(service.MessageMissingFields, validation.Struct(r))
}

func (r *CreateNoteRequest) Params() model.CreateNoteParams {
	return model.CreateNoteParams{Name: r.Name, Body: r.Description}
}

// ListNotesRequest carries nothing; it exists so listing runs through the
// same pipeline as the other operations.
type ListNotesRequest struct{}

func (r *ListNotesRequest) Validate() error {
	return nil
}

// NoteIDRequest addresses a single note by its path parameter.
type NoteIDRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
}

func (r *NoteIDRequest) Validate() error {
	return validation.WithMessage(service.MessageNoteIDRequired, validation.Struct(r))
}

// UpdateNoteRequest is the body of PATCH /api/v1/notes/:id.
// At least one of name or description must be a non-empty string.
type UpdateNoteRequest struct {
	ID          string `param:"id" json:"-"`
	Name        string `json:"name" validate:"required_without=Description"`
	Description string `json:"description" validate:"required_without=Name"`
}

func (r *UpdateNoteRequest) Validate() error {
	if r.ID == "" {
		return validation.WithMessage(service.MessageNoteIDRequired, validation.CustomValidationErrors{
			{Field: "id", Message: "is required"},
		})
	}

	return validation.WithMessage(service.MessageMissingUpdateField, validation.Struct(r))
}

// Params keeps only the fields the client supplied.
func (r *UpdateNoteRequest) Params() model.UpdateNoteParams {
	var params model.UpdateNoteParams
	if r.Name != "" {
		params.Name = &r.Name
	}
	if r.Description != "" {
		params.Body = &r.Description
	}
	return params
}
