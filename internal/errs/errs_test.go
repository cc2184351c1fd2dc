package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("City not found")

	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "City not found", err.Error())
}

func TestHTTPError_AsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("update cat: %w", NewNotFoundError("Cat not found"))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}

func TestValidationError_CarriesFields(t *testing.T) {
	err := ValidationError(FieldError{Field: "bark_decibels", Error: "must be a number"})

	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	require.Len(t, err.Errors, 1)
	assert.Equal(t, "bark_decibels", err.Errors[0].Field)
}

func TestWithMessage_DoesNotMutate(t *testing.T) {
	base := NewNotFoundError("not found")
	custom := base.WithMessage("Dog not found in this city")

	assert.Equal(t, "not found", base.Message)
	assert.Equal(t, "Dog not found in this city", custom.Message)
	assert.Equal(t, base.Status, custom.Status)
}
