package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"city-animals/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dogPayload struct {
	BarkDecibels *float64 `json:"bark_decibels" validate:"required"`
	Breed        *string  `json:"breed" validate:"omitempty,max=10"`
}

func newRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/dogs", strings.NewReader(body))
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestDecodeAndValidate_AcceptsIntegerForFloat(t *testing.T) {
	var p dogPayload
	require.NoError(t, DecodeAndValidate(newRequest(`{"bark_decibels": 72}`), &p))
	require.NotNil(t, p.BarkDecibels)
	assert.Equal(t, 72.0, *p.BarkDecibels)
}

func TestDecodeAndValidate_ZeroIsPresent(t *testing.T) {
	var p dogPayload
	require.NoError(t, DecodeAndValidate(newRequest(`{"bark_decibels": 0}`), &p))
	assert.Equal(t, 0.0, *p.BarkDecibels)
}

func TestDecodeAndValidate_RejectsString(t *testing.T) {
	var p dogPayload
	err := DecodeAndValidate(newRequest(`{"bark_decibels": "loud"}`), &p)

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "bark_decibels", httpErr.Errors[0].Field)
	assert.Equal(t, "must be a number", httpErr.Errors[0].Error)
}

func TestDecodeAndValidate_MissingRequiredField(t *testing.T) {
	var p dogPayload
	err := DecodeAndValidate(newRequest(`{"breed": "Poodle"}`), &p)

	httpErr := asHTTPError(t, err)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "bark_decibels", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestDecodeAndValidate_MaxLength(t *testing.T) {
	var p dogPayload
	err := DecodeAndValidate(newRequest(`{"bark_decibels": 1, "breed": "Bernese Mountain Dog"}`), &p)

	httpErr := asHTTPError(t, err)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "breed", httpErr.Errors[0].Field)
	assert.Equal(t, "must not exceed 10 characters", httpErr.Errors[0].Error)
}

func TestDecodeAndValidate_EmptyAndBrokenBody(t *testing.T) {
	var p dogPayload

	httpErr := asHTTPError(t, DecodeAndValidate(newRequest(""), &p))
	assert.Equal(t, "request body is required", httpErr.Message)

	httpErr = asHTTPError(t, DecodeAndValidate(newRequest(`{"bark_decibels":`), &p))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("6F9619FF-8B86-D011-B42D-00C04FC964FF")
	require.NoError(t, err)
	assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", id)

	_, err = ParseID("42")
	httpErr := asHTTPError(t, err)
	assert.Equal(t, "id", httpErr.Errors[0].Field)
}
