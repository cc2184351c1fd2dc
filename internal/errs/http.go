package errs

import "net/http"

func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    codeFor(http.StatusNotFound),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewBadRequestError acepta errores por campo opcionales (validación).
func NewBadRequestError(message string, fields []FieldError) *HTTPError {
	return &HTTPError{
		Code:    codeFor(http.StatusBadRequest),
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  fields,
	}
}

// NewInternalServerError nunca expone el error real al cliente; eso va al log.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    codeFor(http.StatusInternalServerError),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

func ValidationError(fields ...FieldError) *HTTPError {
	return NewBadRequestError("Validation failed", fields)
}
