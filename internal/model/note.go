// Package model holds the domain entities shared by the repository,
// service and handler layers.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Note is a persisted note.
//
// ID and CreatedAt are assigned by the database on insert and never change.
// The client-facing input field for Body is "description".
type Note struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateNoteParams carries the values for a new note.
type CreateNoteParams struct {
	Name string
	Body string
}

// UpdateNoteParams is a partial update: nil fields are left unchanged.
type UpdateNoteParams struct {
	Name *string
	Body *string
}

// IsEmpty reports whether the update would change nothing.
func (p UpdateNoteParams) IsEmpty() bool {
	return p.Name == nil && p.Body == nil
}
