package cities

import (
	"net/http"

	"city-animals/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/cities", listCitiesHandler(svc))
}

type cityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// listCitiesHandler godoc
// @Summary     List cities
// @Tags        cities
// @Produce     json
// @Success     200 {array} cities.cityResponse
// @Router      /cities [get]
func listCitiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]cityResponse, 0, len(items))
		for _, c := range items {
			out = append(out, cityResponse{ID: c.ID, Name: c.Name})
		}
		respond.JSON(w, http.StatusOK, out)
	}
}
