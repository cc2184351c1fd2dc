// Package errs define la forma de error que devuelve la API.
//
// Todos los handlers responden errores como HTTPError serializado a JSON,
// así el cliente siempre recibe {code, message, status, errors}.
package errs

import (
	"net/http"
	"strings"
)

// FieldError es un error de validación de un campo del payload.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is hace que errors.Is(err, &HTTPError{}) matchee cualquier HTTPError.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// codeFor: "Not Found" -> "NOT_FOUND"
func codeFor(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
