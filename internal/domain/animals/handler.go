package animals

import (
	"net/http"
	"net/url"

	"city-animals/internal/platform/respond"
	"city-animals/internal/validation"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el mismo set de rutas para cada Kind:
// /cats, /cats/{id}, /city/{cityName}/cats, /city/{cityName}/cats/{id} (y /dogs).
func RegisterRoutes(r chi.Router, svc *Service) {
	for _, kind := range Kinds {
		registerKind(r, svc, kind)
	}
}

func registerKind(r chi.Router, svc *Service, kind Kind) {
	r.Route("/"+kind.Plural(), func(ar chi.Router) {
		ar.Post("/", createHandler(svc, kind))
		ar.Get("/", listHandler(svc, kind))
		ar.Put("/{id}", updateHandler(svc, kind))
		ar.Delete("/{id}", deleteHandler(svc, kind))
	})

	r.Route("/city/{cityName}/"+kind.Plural(), func(cr chi.Router) {
		cr.Get("/", listInCityHandler(svc, kind))
		cr.Post("/", upsertInCityHandler(svc, kind))
		cr.Put("/{id}", updateInCityHandler(svc, kind))
		cr.Delete("/{id}", deleteInCityHandler(svc, kind))
	})
}

type catRequest struct {
	FavoriteFish *string `json:"favorite_fish" validate:"required,max=200"`
	Breed        *string `json:"breed" validate:"omitempty,max=100"`
}

// dogRequest: bark_decibels acepta cualquier número JSON (72 o 72.5) y se
// guarda como float64. Un string u otro tipo es 400.
type dogRequest struct {
	BarkDecibels *float64 `json:"bark_decibels" validate:"required"`
	Breed        *string  `json:"breed" validate:"omitempty,max=100"`
}

type catResponse struct {
	ID           string  `json:"id"`
	AnimalType   Kind    `json:"animal_type"`
	Breed        *string `json:"breed"`
	CityID       *string `json:"city_id"`
	FavoriteFish string  `json:"favorite_fish"`
}

type dogResponse struct {
	ID           string  `json:"id"`
	AnimalType   Kind    `json:"animal_type"`
	Breed        *string `json:"breed"`
	CityID       *string `json:"city_id"`
	BarkDecibels float64 `json:"bark_decibels"`
}

type statusResponse struct {
	Status string `json:"status"`
	Note   any    `json:"note"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// createHandler godoc
// @Summary     Create an animal
// @Tags        animals
// @Accept      json
// @Produce     json
// @Param       body body animals.catRequest true "cat payload (dogs: {bark_decibels, breed})"
// @Success     200 {object} animals.statusResponse
// @Failure     400 {object} errs.HTTPError
// @Router      /cats [post]
// @Router      /dogs [post]
func createHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r, kind)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		a, err := svc.Create(r.Context(), kind, in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, statusResponse{Status: "success", Note: toResponse(a)})
	}
}

// listHandler godoc
// @Summary     List all animals of a kind
// @Tags        animals
// @Produce     json
// @Success     200 {array} animals.catResponse
// @Router      /cats [get]
// @Router      /dogs [get]
func listHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), kind)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toResponses(items))
	}
}

// updateHandler godoc
// @Summary     Update an animal by id
// @Tags        animals
// @Accept      json
// @Produce     json
// @Param       id   path string true "animal id (uuid)"
// @Success     200 {object} animals.statusResponse
// @Failure     400 {object} errs.HTTPError
// @Failure     404 {object} errs.HTTPError
// @Router      /cats/{id} [put]
// @Router      /dogs/{id} [put]
func updateHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		in, err := decodeInput(r, kind)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		if _, err := svc.Update(r.Context(), kind, id, in); err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, statusResponse{
			Status: "success",
			Note:   kind.Label() + " updated successfully",
		})
	}
}

// deleteHandler godoc
// @Summary     Delete an animal by id
// @Tags        animals
// @Produce     json
// @Param       id path string true "animal id (uuid)"
// @Success     200 {object} animals.statusResponse
// @Failure     404 {object} errs.HTTPError
// @Router      /cats/{id} [delete]
// @Router      /dogs/{id} [delete]
func deleteHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), kind, id); err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, statusResponse{
			Status: "success",
			Note:   kind.Label() + " deleted successfully",
		})
	}
}

// listInCityHandler godoc
// @Summary     List animals of a kind in a city
// @Tags        city
// @Produce     json
// @Param       cityName path string true "city name (exact match)"
// @Success     200 {array} animals.catResponse
// @Failure     404 {object} errs.HTTPError
// @Router      /city/{cityName}/cats [get]
// @Router      /city/{cityName}/dogs [get]
func listInCityHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListInCity(r.Context(), kind, cityParam(r))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toResponses(items))
	}
}

// upsertInCityHandler godoc
// @Summary     Create or move an animal into a city, keyed by its defining field
// @Tags        city
// @Accept      json
// @Produce     json
// @Param       cityName path string true "city name (exact match)"
// @Success     200 {object} animals.catResponse
// @Failure     400 {object} errs.HTTPError
// @Failure     404 {object} errs.HTTPError
// @Router      /city/{cityName}/cats [post]
// @Router      /city/{cityName}/dogs [post]
func upsertInCityHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r, kind)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		a, err := svc.UpsertInCity(r.Context(), kind, cityParam(r), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toResponse(a))
	}
}

// updateInCityHandler godoc
// @Summary     Update an animal that belongs to a city
// @Tags        city
// @Accept      json
// @Produce     json
// @Param       cityName path string true "city name (exact match)"
// @Param       id       path string true "animal id (uuid)"
// @Success     200 {object} animals.catResponse
// @Failure     400 {object} errs.HTTPError
// @Failure     404 {object} errs.HTTPError
// @Router      /city/{cityName}/cats/{id} [put]
// @Router      /city/{cityName}/dogs/{id} [put]
func updateInCityHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		in, err := decodeInput(r, kind)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		a, err := svc.UpdateInCity(r.Context(), kind, cityParam(r), id, in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toResponse(a))
	}
}

// deleteInCityHandler godoc
// @Summary     Delete an animal that belongs to a city
// @Tags        city
// @Produce     json
// @Param       cityName path string true "city name (exact match)"
// @Param       id       path string true "animal id (uuid)"
// @Success     200 {object} animals.messageResponse
// @Failure     404 {object} errs.HTTPError
// @Router      /city/{cityName}/cats/{id} [delete]
// @Router      /city/{cityName}/dogs/{id} [delete]
func deleteInCityHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		if err := svc.DeleteInCity(r.Context(), kind, cityParam(r), id); err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, messageResponse{Message: kind.Label() + " deleted successfully"})
	}
}

func decodeInput(r *http.Request, kind Kind) (Input, error) {
	switch kind {
	case KindCat:
		var req catRequest
		if err := validation.DecodeAndValidate(r, &req); err != nil {
			return Input{}, err
		}
		return Input{FavoriteFish: req.FavoriteFish, Breed: req.Breed}, nil

	case KindDog:
		var req dogRequest
		if err := validation.DecodeAndValidate(r, &req); err != nil {
			return Input{}, err
		}
		return Input{BarkDecibels: req.BarkDecibels, Breed: req.Breed}, nil

	default:
		return Input{}, ErrUnknownKind
	}
}

// cityParam: chi puede devolver el segmento todavía escapado ("S%C3%A3o").
func cityParam(r *http.Request) string {
	raw := chi.URLParam(r, "cityName")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func toResponse(a Animal) any {
	switch a.Kind {
	case KindCat:
		return catResponse{
			ID:           a.ID,
			AnimalType:   a.Kind,
			Breed:        a.Breed,
			CityID:       a.CityID,
			FavoriteFish: a.FavoriteFish,
		}
	case KindDog:
		return dogResponse{
			ID:           a.ID,
			AnimalType:   a.Kind,
			Breed:        a.Breed,
			CityID:       a.CityID,
			BarkDecibels: a.BarkDecibels,
		}
	default:
		return nil
	}
}

func toResponses(items []Animal) []any {
	out := make([]any, 0, len(items))
	for _, a := range items {
		out = append(out, toResponse(a))
	}
	return out
}
