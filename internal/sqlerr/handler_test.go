package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/notes-api/internal/errs"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "http error passes through",
			err:         errs.NewNotFoundError("Note not found", true, nil),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Note not found",
		},
		{
			name:        "not null violation",
			err:         fmt.Errorf("failed to create note: %w", &pgconn.PgError{Code: "23502", Severity: "ERROR", TableName: "notes", ColumnName: "body"}),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "NOTE_REQUIRED",
			wantMessage: "The Body is required",
		},
		{
			name:        "unique violation names the column",
			err:         &pgconn.PgError{Code: "23505", TableName: "notes", ConstraintName: "notes_name_key"},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "NOTE_ALREADY_EXISTS",
			wantMessage: "A Note with this Name already exists",
		},
		{
			name:        "check violation",
			err:         &pgconn.PgError{Code: "23514", TableName: "notes", ColumnName: "name"},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "NOTE_INVALID",
			wantMessage: "The Name value does not meet required conditions",
		},
		{
			name:        "other postgres error",
			err:         &pgconn.PgError{Code: "42P01", Message: `relation "notes" does not exist`},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: "Internal Server Error",
		},
		{
			name:        "no rows",
			err:         fmt.Errorf("failed to get note: %w", pgx.ErrNoRows),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Resource not found",
		},
		{
			name:        "unknown error",
			err:         errors.New("connection reset by peer"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.ErrorAs(t, HandleError(tt.err), &httpErr)

			assert.Equal(t, tt.wantStatus, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.wantMessage, httpErr.Message)
		})
	}
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, InvalidTextRep, MapCode("22P02"))
	assert.Equal(t, QueryCanceled, MapCode("57014"))
	assert.Equal(t, ConnectionException, MapCode("08006"))
	assert.Equal(t, Other, MapCode("42P01"))
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Severity: "ERROR"}

	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrapped: %w", pgErr)))
	assert.Equal(t, UniqueViolation, ErrCode(ConvertPgError(pgErr)))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))
}

func TestConvertPgError_Unwrap(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", Severity: "FATAL", Message: "null value"}

	converted := ConvertPgError(pgErr)

	assert.Equal(t, SeverityFatal, converted.Severity)
	assert.ErrorIs(t, converted, pgErr)
	assert.Equal(t, "FATAL: null value (SQLSTATE 23502)", converted.Error())
}

func TestGetEntityName(t *testing.T) {
	assert.Equal(t, "Note", getEntityName("notes", ""))
	assert.Equal(t, "Author", getEntityName("notes", "author_id"))
	assert.Equal(t, "record", getEntityName("", ""))
}
