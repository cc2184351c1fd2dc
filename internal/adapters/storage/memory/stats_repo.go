package memory

import (
	"context"
	"sort"

	"city-animals/internal/domain/animals"
	"city-animals/internal/domain/stats"
)

// StatsRepo calcula los agregados sobre los repos in-memory, con la misma
// semántica que el LEFT JOIN de Postgres: toda ciudad aparece, con 0 si no hay datos.
type StatsRepo struct {
	cities  *CityRepo
	animals *AnimalRepo
}

func NewStatsRepo(cities *CityRepo, animalRepo *AnimalRepo) *StatsRepo {
	return &StatsRepo{cities: cities, animals: animalRepo}
}

func (r *StatsRepo) CatsPerCity(ctx context.Context) ([]stats.CatCityStats, error) {
	all, err := r.cities.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, a := range r.animals.all() {
		if a.Kind != animals.KindCat || a.CityID == nil {
			continue
		}
		counts[*a.CityID]++
	}

	out := make([]stats.CatCityStats, 0, len(all))
	for _, c := range all {
		out = append(out, stats.CatCityStats{
			CityID:   c.ID,
			CityName: c.Name,
			Total:    counts[c.ID],
		})
	}
	return out, nil
}

func (r *StatsRepo) DogsPerCityBreed(ctx context.Context) ([]stats.DogBreedStats, error) {
	all, err := r.cities.List(ctx)
	if err != nil {
		return nil, err
	}

	type groupKey struct {
		cityID string
		breed  string
		null   bool
	}
	maxByGroup := map[groupKey]float64{}
	breedsByCity := map[string][]groupKey{}

	for _, a := range r.animals.all() {
		if a.Kind != animals.KindDog || a.CityID == nil {
			continue
		}

		k := groupKey{cityID: *a.CityID, null: a.Breed == nil}
		if a.Breed != nil {
			k.breed = *a.Breed
		}

		current, seen := maxByGroup[k]
		if !seen {
			breedsByCity[k.cityID] = append(breedsByCity[k.cityID], k)
			maxByGroup[k] = a.BarkDecibels
			continue
		}
		if a.BarkDecibels > current {
			maxByGroup[k] = a.BarkDecibels
		}
	}

	out := make([]stats.DogBreedStats, 0, len(all))
	for _, c := range all {
		groups := breedsByCity[c.ID]
		if len(groups) == 0 {
			out = append(out, stats.DogBreedStats{CityID: c.ID, CityName: c.Name})
			continue
		}

		// nil primero, después alfabético (NULLS FIRST en Postgres)
		sort.Slice(groups, func(i, j int) bool {
			if groups[i].null != groups[j].null {
				return groups[i].null
			}
			return groups[i].breed < groups[j].breed
		})

		for _, k := range groups {
			row := stats.DogBreedStats{
				CityID:          c.ID,
				CityName:        c.Name,
				MaxBarkDecibels: maxByGroup[k],
			}
			if !k.null {
				b := k.breed
				row.Breed = &b
			}
			out = append(out, row)
		}
	}
	return out, nil
}
