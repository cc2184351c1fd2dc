package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"city-animals/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

// subtypeTable devuelve la tabla y columna del subtipo. Los nombres salen de
// este switch, nunca del request.
func subtypeTable(kind animals.Kind) (table, column string, err error) {
	switch kind {
	case animals.KindCat:
		return "cats", "favorite_fish", nil
	case animals.KindDog:
		return "dogs", "bark_decibels", nil
	default:
		return "", "", animals.ErrUnknownKind
	}
}

func traitValue(a animals.Animal) any {
	switch a.Kind {
	case animals.KindCat:
		return a.FavoriteFish
	case animals.KindDog:
		return a.BarkDecibels
	default:
		return nil
	}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	table, column, err := subtypeTable(a.Kind)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO animals (id, animal_type, breed, city_id)
		VALUES ($1, $2, $3, $4)
	`,
		a.ID,
		string(a.Kind),
		toNullString(a.Breed),
		toNullString(a.CityID),
	); err != nil {
		return fmt.Errorf("insert animal: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, %s) VALUES ($1, $2)`, table, column),
		a.ID,
		traitValue(a),
	); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}

	return tx.Commit()
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	table, column, err := subtypeTable(a.Kind)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE animals
		SET
			breed = $2,
			city_id = $3
		WHERE id = $1 AND animal_type = $4
	`,
		a.ID,
		toNullString(a.Breed),
		toNullString(a.CityID),
		string(a.Kind),
	)
	if err != nil {
		return fmt.Errorf("update animal: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE id = $1`, table, column),
		a.ID,
		traitValue(a),
	); err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}

	return tx.Commit()
}

// Delete borra la fila base; el subtipo cae por ON DELETE CASCADE.
func (r *AnimalsRepo) Delete(ctx context.Context, kind animals.Kind, id string) error {
	if !kind.Valid() {
		return animals.ErrUnknownKind
	}

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM animals
		WHERE id = $1 AND animal_type = $2
	`, id, string(kind))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, kind animals.Kind, id string) (animals.Animal, error) {
	query, err := selectQuery(kind, "AND a.id = $2")
	if err != nil {
		return animals.Animal{}, err
	}

	a, err := scanAnimal(r.db.QueryRowContext(ctx, query, string(kind), id), kind)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context, kind animals.Kind) ([]animals.Animal, error) {
	query, err := selectQuery(kind, "")
	if err != nil {
		return nil, err
	}
	return r.queryAll(ctx, kind, query, string(kind))
}

func (r *AnimalsRepo) ListByCity(ctx context.Context, kind animals.Kind, cityID string) ([]animals.Animal, error) {
	query, err := selectQuery(kind, "AND a.city_id = $2")
	if err != nil {
		return nil, err
	}
	return r.queryAll(ctx, kind, query, string(kind), cityID)
}

func (r *AnimalsRepo) FindByTrait(ctx context.Context, probe animals.Animal) (animals.Animal, error) {
	_, column, err := subtypeTable(probe.Kind)
	if err != nil {
		return animals.Animal{}, err
	}

	query, err := selectQuery(probe.Kind, "AND t."+column+" = $2")
	if err != nil {
		return animals.Animal{}, err
	}

	a, err := scanAnimal(r.db.QueryRowContext(ctx, query+" LIMIT 1", string(probe.Kind), traitValue(probe)), probe.Kind)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

// selectQuery arma el SELECT base+subtipo; $1 es siempre animal_type.
func selectQuery(kind animals.Kind, where string) (string, error) {
	table, column, err := subtypeTable(kind)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`
		SELECT a.id, a.breed, a.city_id, t.%s
		FROM animals a
		JOIN %s t ON t.id = a.id
		WHERE a.animal_type = $1 %s
		ORDER BY a.id
	`, column, table, where), nil
}

func (r *AnimalsRepo) queryAll(ctx context.Context, kind animals.Kind, query string, args ...any) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row scanner, kind animals.Kind) (animals.Animal, error) {
	a := animals.Animal{Kind: kind}
	var breed, cityID sql.NullString

	var trait any
	switch kind {
	case animals.KindCat:
		trait = &a.FavoriteFish
	case animals.KindDog:
		trait = &a.BarkDecibels
	default:
		return animals.Animal{}, animals.ErrUnknownKind
	}

	if err := row.Scan(&a.ID, &breed, &cityID, trait); err != nil {
		return animals.Animal{}, err
	}

	a.Breed = fromNullString(breed)
	a.CityID = fromNullString(cityID)
	return a, nil
}
