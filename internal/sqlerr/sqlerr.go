// Package sqlerr handles database driver errors.
//
// It parses Postgres SQLSTATE codes from the driver and converts them
// into application errors (e.g. a "not null violation" becomes a
// Bad Request naming the missing column).
package sqlerr

import "fmt"

// Code is a driver-independent category of database error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	InvalidTextRep      Code = "invalid_text_representation"
	ConnectionException Code = "connection_exception"
	QueryCanceled       Code = "query_canceled"
)

// Severity mirrors the Postgres error severity levels.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a normalised database error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (SQLSTATE %s)", e.Severity, e.Message, e.DatabaseCode)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE to a Code.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "22P02":
		return InvalidTextRep
	case "57014":
		return QueryCanceled
	}

	// Class 08: connection exceptions.
	if len(sqlState) == 5 && sqlState[:2] == "08" {
		return ConnectionException
	}

	return Other
}

// MapSeverity maps the driver's severity string to a Severity.
func MapSeverity(severity string) Severity {
	switch s := Severity(severity); s {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return s
	default:
		return SeverityError
	}
}
