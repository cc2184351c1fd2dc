package stats

import (
	"net/http"

	"city-animals/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/stats", func(sr chi.Router) {
		// el path histórico lleva "/" final; aceptamos ambos
		sr.Get("/cats", catStatsHandler(svc))
		sr.Get("/cats/", catStatsHandler(svc))
		sr.Get("/dogs", dogStatsHandler(svc))
		sr.Get("/dogs/", dogStatsHandler(svc))
	})
}

type catStatsResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Total int    `json:"total"`
}

type dogStatsResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	AnimalBreed *string `json:"animal_breed"`
	Decibels    float64 `json:"decibels"`
}

// catStatsHandler godoc
// @Summary     Number of cats per city
// @Tags        stats
// @Produce     json
// @Success     200 {array} stats.catStatsResponse
// @Router      /stats/cats/ [get]
func catStatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.CatsPerCity(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]catStatsResponse, 0, len(items))
		for _, s := range items {
			out = append(out, catStatsResponse{ID: s.CityID, Name: s.CityName, Total: s.Total})
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// dogStatsHandler godoc
// @Summary     Loudest bark per city and breed
// @Tags        stats
// @Produce     json
// @Success     200 {array} stats.dogStatsResponse
// @Router      /stats/dogs/ [get]
func dogStatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.DogsPerCityBreed(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]dogStatsResponse, 0, len(items))
		for _, s := range items {
			out = append(out, dogStatsResponse{
				ID:          s.CityID,
				Name:        s.CityName,
				AnimalBreed: s.Breed,
				Decibels:    s.MaxBarkDecibels,
			})
		}
		respond.JSON(w, http.StatusOK, out)
	}
}
