package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/notes-api/internal/errs"
)

type samplePayload struct {
	ID    string `param:"id" json:"-" validate:"required"`
	Title string `json:"title" validate:"required,max=5"`
}

func (p *samplePayload) Validate() error {
	return WithMessage("Please fix the payload", Struct(p))
}

type customPayload struct {
	Count int `json:"count"`
}

func (p *customPayload) Validate() error {
	if p.Count%2 != 0 {
		return CustomValidationErrors{{Field: "count", Message: "must be even"}}
	}
	return nil
}

func newContext(method, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestBindAndValidate_Success(t *testing.T) {
	c := newContext(http.MethodPost, `{"title":"hey"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	var payload samplePayload
	require.NoError(t, BindAndValidate(c, &payload))

	assert.Equal(t, "abc", payload.ID)
	assert.Equal(t, "hey", payload.Title)
}

func TestBindAndValidate_UsesMessage(t *testing.T) {
	c := newContext(http.MethodPost, `{"title":"much too long"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := BindAndValidate(c, &samplePayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Please fix the payload", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "title", Error: "must not exceed 5 characters"}}, httpErr.Errors)
}

func TestBindAndValidate_MissingParamUsesLowercaseName(t *testing.T) {
	c := newContext(http.MethodPost, `{"title":"ok"}`)

	err := BindAndValidate(c, &samplePayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, []errs.FieldError{{Field: "id", Error: "is required"}}, httpErr.Errors)
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	c := newContext(http.MethodPost, `{"title":`)

	err := BindAndValidate(c, &samplePayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	c := newContext(http.MethodPost, `{"count":3}`)

	err := BindAndValidate(c, &customPayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "count", Error: "must be even"}}, httpErr.Errors)
}

func TestWithMessage_NilStaysNil(t *testing.T) {
	assert.NoError(t, WithMessage("ignored", nil))
}

func TestToHTTPError_PassesThroughHTTPError(t *testing.T) {
	original := errs.NewNotFoundError("gone", true, nil)

	assert.Same(t, original, toHTTPError(original))
}
