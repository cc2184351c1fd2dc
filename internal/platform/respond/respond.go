// Package respond centraliza la escritura de respuestas JSON.
//
// Antes cada módulo tenía su propio writeJSON duplicado; con cities, animals y
// stats ya son tres, así que se extrajo acá.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"city-animals/internal/errs"

	"github.com/rs/zerolog"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error escribe err como *errs.HTTPError. Cualquier otro error se loguea con el
// logger del request y se responde como 500 genérico.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		zerolog.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("unhandled error")
		httpErr = errs.NewInternalServerError()
	}

	JSON(w, httpErr.Status, httpErr)
}
