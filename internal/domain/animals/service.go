package animals

import (
	"context"
	"errors"

	"city-animals/internal/domain/cities"
	"city-animals/internal/errs"

	"github.com/google/uuid"
)

// CityFinder evita depender del Service completo de cities.
type CityFinder interface {
	FindByName(ctx context.Context, name string) (cities.City, error)
}

type Service struct {
	repo   Repository
	cities CityFinder
	newID  func() string
}

func NewService(repo Repository, cityFinder CityFinder) *Service {
	return &Service{
		repo:   repo,
		cities: cityFinder,
		newID:  uuid.NewString,
	}
}

func (s *Service) Create(ctx context.Context, kind Kind, in Input) (Animal, error) {
	if !kind.Valid() {
		return Animal{}, ErrUnknownKind
	}

	a := Animal{ID: s.newID(), Kind: kind}
	if err := in.applyTo(&a); err != nil {
		return Animal{}, inputError(kind, err)
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, kind Kind) ([]Animal, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	return s.repo.List(ctx, kind)
}

func (s *Service) Update(ctx context.Context, kind Kind, id string, in Input) (Animal, error) {
	a, err := s.get(ctx, kind, id)
	if err != nil {
		return Animal{}, err
	}

	if err := in.applyTo(&a); err != nil {
		return Animal{}, inputError(kind, err)
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, notFound(err, kind.Label()+" not found")
	}
	return a, nil
}

// Delete borra el subtipo y su registro base (ver DESIGN.md, política de cascada).
func (s *Service) Delete(ctx context.Context, kind Kind, id string) error {
	if _, err := s.get(ctx, kind, id); err != nil {
		return err
	}
	return notFound(s.repo.Delete(ctx, kind, id), kind.Label()+" not found")
}

func (s *Service) ListInCity(ctx context.Context, kind Kind, cityName string) ([]Animal, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}

	city, err := s.resolveCity(ctx, cityName)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByCity(ctx, kind, city.ID)
}

// UpsertInCity usa el campo definitorio como clave: si ya hay un animal con el
// mismo valor lo mueve a la ciudad y lo actualiza; si no, crea uno nuevo.
// Es read-then-write sin lock: dos upserts concurrentes con el mismo valor
// pueden crear dos filas.
func (s *Service) UpsertInCity(ctx context.Context, kind Kind, cityName string, in Input) (Animal, error) {
	if !kind.Valid() {
		return Animal{}, ErrUnknownKind
	}

	city, err := s.resolveCity(ctx, cityName)
	if err != nil {
		return Animal{}, err
	}

	probe := Animal{Kind: kind}
	if err := in.applyTo(&probe); err != nil {
		return Animal{}, inputError(kind, err)
	}

	existing, err := s.repo.FindByTrait(ctx, probe)
	switch {
	case err == nil:
		if err := in.applyTo(&existing); err != nil {
			return Animal{}, inputError(kind, err)
		}
		existing.CityID = &city.ID

		if err := s.repo.Update(ctx, existing); err != nil {
			return Animal{}, err
		}
		return existing, nil

	case errors.Is(err, ErrNotFound):
		probe.ID = s.newID()
		probe.CityID = &city.ID

		if err := s.repo.Create(ctx, probe); err != nil {
			return Animal{}, err
		}
		return probe, nil

	default:
		return Animal{}, err
	}
}

func (s *Service) UpdateInCity(ctx context.Context, kind Kind, cityName, id string, in Input) (Animal, error) {
	a, err := s.getInCity(ctx, kind, cityName, id)
	if err != nil {
		return Animal{}, err
	}

	if err := in.applyTo(&a); err != nil {
		return Animal{}, inputError(kind, err)
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, notFound(err, kind.Label()+" not found in this city")
	}
	return a, nil
}

func (s *Service) DeleteInCity(ctx context.Context, kind Kind, cityName, id string) error {
	if _, err := s.getInCity(ctx, kind, cityName, id); err != nil {
		return err
	}
	return notFound(s.repo.Delete(ctx, kind, id), kind.Label()+" not found in this city")
}

func (s *Service) get(ctx context.Context, kind Kind, id string) (Animal, error) {
	if !kind.Valid() {
		return Animal{}, ErrUnknownKind
	}

	a, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return Animal{}, notFound(err, kind.Label()+" not found")
	}
	return a, nil
}

// getInCity: el scoping es estricto, un id que existe en otra ciudad es NotFound.
func (s *Service) getInCity(ctx context.Context, kind Kind, cityName, id string) (Animal, error) {
	if !kind.Valid() {
		return Animal{}, ErrUnknownKind
	}

	city, err := s.resolveCity(ctx, cityName)
	if err != nil {
		return Animal{}, err
	}

	msg := kind.Label() + " not found in this city"

	a, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return Animal{}, notFound(err, msg)
	}
	if !a.InCity(city.ID) {
		return Animal{}, errs.NewNotFoundError(msg)
	}
	return a, nil
}

func (s *Service) resolveCity(ctx context.Context, name string) (cities.City, error) {
	city, err := s.cities.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, cities.ErrNotFound) {
			return cities.City{}, errs.NewNotFoundError("City not found")
		}
		return cities.City{}, err
	}
	return city, nil
}

// notFound traduce ErrNotFound del repo a 404; el resto pasa tal cual.
func notFound(err error, msg string) error {
	if errors.Is(err, ErrNotFound) {
		return errs.NewNotFoundError(msg)
	}
	return err
}

func inputError(kind Kind, err error) error {
	if errors.Is(err, ErrInvalidInput) {
		return errs.ValidationError(errs.FieldError{Field: kind.TraitField(), Error: "is required"})
	}
	return err
}
