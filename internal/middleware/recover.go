package middleware

import (
	"net/http"
	"runtime/debug"

	"city-animals/internal/errs"
	"city-animals/internal/platform/respond"

	"github.com/rs/zerolog"
)

// Recover reemplaza a chimw.Recoverer: loguea el panic con el logger del
// request y responde el mismo JSON de error que el resto de la API.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// ErrAbortHandler es la forma de net/http de cortar la respuesta.
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			zerolog.Ctx(r.Context()).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			respond.Error(w, r, errs.NewInternalServerError())
		}()

		next.ServeHTTP(w, r)
	})
}
