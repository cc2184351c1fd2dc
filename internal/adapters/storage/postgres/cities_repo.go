package postgres

import (
	"context"
	"database/sql"
	"errors"

	"city-animals/internal/domain/cities"
)

type CitiesRepo struct {
	db *sql.DB
}

func NewCitiesRepo(db *sql.DB) *CitiesRepo {
	return &CitiesRepo{db: db}
}

// Create ignora nombres repetidos: dos procesos haciendo seed a la vez no fallan.
func (r *CitiesRepo) Create(ctx context.Context, c cities.City) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cities (id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
	`, c.ID, c.Name)
	return err
}

func (r *CitiesRepo) GetByName(ctx context.Context, name string) (cities.City, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM cities
		WHERE name = $1
	`, name)

	var c cities.City
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cities.City{}, cities.ErrNotFound
		}
		return cities.City{}, err
	}
	return c, nil
}

func (r *CitiesRepo) List(ctx context.Context) ([]cities.City, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name
		FROM cities
		ORDER BY name COLLATE "C"
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cities.City, 0)
	for rows.Next() {
		var c cities.City
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
