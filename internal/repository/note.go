package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/notes-api/internal/model"
)

// NoteRepository persists notes in the "notes" table.
//
// Every method issues exactly one statement. Lookups that match no row
// return an error wrapping pgx.ErrNoRows.
type NoteRepository struct {
	db Querier
}

func NewNoteRepository(db Querier) *NoteRepository {
	return &NoteRepository{db: db}
}

const noteColumns = "id, name, body, created_at"

const queryCreateNote = `
INSERT INTO notes (name, body)
VALUES ($1, $2)
RETURNING ` + noteColumns

// Create inserts a note and returns the stored row.
//
// A nil note with a nil error means the insert returned nothing.
func (r *NoteRepository) Create(ctx context.Context, params model.CreateNoteParams) (*model.Note, error) {
	rows, err := r.db.Query(ctx, queryCreateNote, params.Name, params.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	note, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Note])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

const queryListNotes = `
SELECT ` + noteColumns + `
FROM notes
ORDER BY created_at DESC`

// List returns every note, newest first. The slice is never nil.
func (r *NoteRepository) List(ctx context.Context) ([]model.Note, error) {
	rows, err := r.db.Query(ctx, queryListNotes)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	notes, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Note])
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	if notes == nil {
		notes = []model.Note{}
	}

	return notes, nil
}

const queryGetNote = `
SELECT ` + noteColumns + `
FROM notes
WHERE id = $1`

func (r *NoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Note, error) {
	rows, err := r.db.Query(ctx, queryGetNote, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get note %s: %w", id, err)
	}

	note, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Note])
	if err != nil {
		return nil, fmt.Errorf("failed to get note %s: %w", id, err)
	}

	return note, nil
}

// COALESCE keeps the stored value for every NULL parameter, so absent
// fields are left unchanged and the existence check and write are atomic.
const queryUpdateNote = `
UPDATE notes
SET name = COALESCE($2, name),
    body = COALESCE($3, body)
WHERE id = $1
RETURNING ` + noteColumns

func (r *NoteRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateNoteParams) (*model.Note, error) {
	rows, err := r.db.Query(ctx, queryUpdateNote, id, params.Name, params.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to update note %s: %w", id, err)
	}

	note, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Note])
	if err != nil {
		return nil, fmt.Errorf("failed to update note %s: %w", id, err)
	}

	return note, nil
}

const queryDeleteNote = `
DELETE FROM notes
WHERE id = $1
RETURNING ` + noteColumns

// Delete removes a note permanently and returns the row as it was.
func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Note, error) {
	rows, err := r.db.Query(ctx, queryDeleteNote, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete note %s: %w", id, err)
	}

	note, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Note])
	if err != nil {
		return nil, fmt.Errorf("failed to delete note %s: %w", id, err)
	}

	return note, nil
}
