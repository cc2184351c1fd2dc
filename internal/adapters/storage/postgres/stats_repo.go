package postgres

import (
	"context"
	"database/sql"

	"city-animals/internal/domain/stats"
)

type StatsRepo struct {
	db *sql.DB
}

func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// CatsPerCity: LEFT JOIN para que toda ciudad aparezca; COUNT sobre cats.id da 0 sin gatos.
func (r *StatsRepo) CatsPerCity(ctx context.Context) ([]stats.CatCityStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, COUNT(ct.id) AS total
		FROM cities c
		LEFT JOIN animals a ON a.city_id = c.id AND a.animal_type = 'cat'
		LEFT JOIN cats ct ON ct.id = a.id
		GROUP BY c.id, c.name
		ORDER BY c.name COLLATE "C"
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]stats.CatCityStats, 0)
	for rows.Next() {
		var s stats.CatCityStats
		if err := rows.Scan(&s.CityID, &s.CityName, &s.Total); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// DogsPerCityBreed agrupa por (ciudad, raza). Sin perros: una fila con breed NULL y 0.
func (r *StatsRepo) DogsPerCityBreed(ctx context.Context) ([]stats.DogBreedStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, a.breed, COALESCE(MAX(d.bark_decibels), 0) AS decibels
		FROM cities c
		LEFT JOIN animals a ON a.city_id = c.id AND a.animal_type = 'dog'
		LEFT JOIN dogs d ON d.id = a.id
		GROUP BY c.id, c.name, a.breed
		ORDER BY c.name COLLATE "C", a.breed COLLATE "C" NULLS FIRST
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]stats.DogBreedStats, 0)
	for rows.Next() {
		var s stats.DogBreedStats
		var breed sql.NullString
		if err := rows.Scan(&s.CityID, &s.CityName, &breed, &s.MaxBarkDecibels); err != nil {
			return nil, err
		}
		s.Breed = fromNullString(breed)
		out = append(out, s)
	}
	return out, rows.Err()
}
