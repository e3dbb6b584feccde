package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/notes-api/internal/errs"
	"github.com/deppfellow/notes-api/internal/model"
)

const (
	MessageNoteIDRequired     = "Note ID is required"
	MessageNoteNotFound       = "Note not found"
	MessageNoteNotCreated     = "Note not created"
	MessageMissingFields      = "Please enter all fields"
	MessageMissingUpdateField = "At least one field (name or description) is required to update"
)

var (
	codeNoteNotFound   = "NOTE_NOT_FOUND"
	codeNoteNotCreated = "NOTE_NOT_CREATED"
)

// NoteRepository is the data access the note service depends on.
type NoteRepository interface {
	Create(ctx context.Context, params model.CreateNoteParams) (*model.Note, error)
	List(ctx context.Context) ([]model.Note, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Note, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateNoteParams) (*model.Note, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Note, error)
}

// NoteService implements the notes operations on top of a NoteRepository.
//
// Errors returned are either *errs.HTTPError (400/404) or wrapped data
// layer errors that the global error handler reports as 500.
type NoteService struct {
	repo NoteRepository
}

func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) Create(ctx context.Context, params model.CreateNoteParams) (*model.Note, error) {
	if params.Name == "" || params.Body == "" {
		return nil, errs.NewBadRequestError(MessageMissingFields, true, nil, nil)
	}

	note, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "create note")
	}

	if note == nil {
		return nil, errs.NewBadRequestError(MessageNoteNotCreated, true, &codeNoteNotCreated, nil)
	}

	zerolog.Ctx(ctx).Info().
		Str("note_id", note.ID.String()).
		Msg("note created")

	return note, nil
}

func (s *NoteService) List(ctx context.Context) ([]model.Note, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list notes")
	}
	return notes, nil
}

func (s *NoteService) Get(ctx context.Context, id string) (*model.Note, error) {
	noteID, err := parseNoteID(id)
	if err != nil {
		return nil, err
	}

	note, err := s.repo.GetByID(ctx, noteID)
	if err != nil {
		return nil, mapNoteError(err, "get note")
	}

	return note, nil
}

// Update replaces only the fields present in params.
func (s *NoteService) Update(ctx context.Context, id string, params model.UpdateNoteParams) (*model.Note, error) {
	noteID, err := parseNoteID(id)
	if err != nil {
		return nil, err
	}

	if params.IsEmpty() {
		return nil, errs.NewBadRequestError(MessageMissingUpdateField, true, nil, nil)
	}

	note, err := s.repo.Update(ctx, noteID, params)
	if err != nil {
		return nil, mapNoteError(err, "update note")
	}

	zerolog.Ctx(ctx).Info().
		Str("note_id", note.ID.String()).
		Bool("name_changed", params.Name != nil).
		Bool("body_changed", params.Body != nil).
		Msg("note updated")

	return note, nil
}

// Delete removes the note and returns it as it was before deletion.
func (s *NoteService) Delete(ctx context.Context, id string) (*model.Note, error) {
	noteID, err := parseNoteID(id)
	if err != nil {
		return nil, err
	}

	note, err := s.repo.Delete(ctx, noteID)
	if err != nil {
		return nil, mapNoteError(err, "delete note")
	}

	zerolog.Ctx(ctx).Info().
		Str("note_id", note.ID.String()).
		Msg("note deleted")

	return note, nil
}

// parseNoteID rejects empty ids with 400. Ids that are not UUIDs cannot
// name a stored note, so they are reported as not found without a query.
func parseNoteID(id string) (uuid.UUID, error) {
	if id == "" {
		return uuid.Nil, errs.NewBadRequestError(MessageNoteIDRequired, true, nil, nil)
	}

	noteID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errs.NewNotFoundError(MessageNoteNotFound, true, &codeNoteNotFound)
	}

	return noteID, nil
}

func mapNoteError(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError(MessageNoteNotFound, true, &codeNoteNotFound)
	}
	return pkgerrors.Wrap(err, op)
}
