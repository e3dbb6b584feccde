// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields) defined in struct tags and turns validation
// failures into *errs.HTTPError values the client can understand.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/notes-api/internal/errs"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required"`)
//   - Implement Validate() error that runs Struct(req)
//   - Optionally wrap the result with WithMessage to choose the client-facing summary
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// It is used for rules that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// MessageError attaches a client-facing summary to a validation failure.
type MessageError struct {
	Message string
	Err     error
}

func (e *MessageError) Error() string {
	return e.Message
}

func (e *MessageError) Unwrap() error {
	return e.Err
}

// WithMessage wraps err so the resulting 400 carries message instead of
// the generic "Validation failed". A nil err stays nil.
func WithMessage(message string, err error) error {
	if err == nil {
		return nil
	}
	return &MessageError{Message: message, Err: err}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Struct validates s against its `validate` tags using a shared validator.
//
// Field names in the resulting errors use the `json` tag name.
func Struct(s any) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return strings.ToLower(fld.Name)
			}
			return name
		})
	})
	return validate.Struct(s)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from path params, query and body.
//  2. payload.Validate() applies validation rules.
//  3. Returns *errs.HTTPError (400) if either step fails.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil)
	}

	if err := payload.Validate(); err != nil {
		return toHTTPError(err)
	}

	return nil
}

// bindErrorMessage extracts a readable message from Echo's bind errors.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request body"
}

func toHTTPError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	message := "Validation failed"
	var msgErr *MessageError
	if errors.As(err, &msgErr) {
		message = msgErr.Message
	}

	fieldErrors, ok := extractFieldErrors(err)
	if !ok {
		return errs.ValidationError(err)
	}

	return errs.NewBadRequestError(message, true, nil, fieldErrors)
}

// extractFieldErrors converts validator and custom errors into field errors.
// ok is false when err is neither.
func extractFieldErrors(err error) ([]errs.FieldError, bool) {
	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		fieldErrors := make([]errs.FieldError, 0, len(custom))
		for _, e := range custom {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return fieldErrors, true
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: strings.ToLower(e.Field()),
			Error: fieldMessage(e),
		})
	}

	return fieldErrors, true
}

func fieldMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"

	case "required_without":
		return fmt.Sprintf("is required when %s is not provided", strings.ToLower(err.Param()))

	case "min":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "uuid":
		return "must be a valid UUID"

	default:
		if err.Param() != "" {
			return fmt.Sprintf("%s:%s", err.Tag(), err.Param())
		}
		return err.Tag()
	}
}
