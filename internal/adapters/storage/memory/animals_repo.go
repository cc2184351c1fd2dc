package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"city-animals/internal/domain/animals"
)

type AnimalRepo struct {
	mu   sync.RWMutex
	byID map[string]animals.Animal
}

func NewAnimalRepo() *AnimalRepo {
	return &AnimalRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *AnimalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if !a.Kind.Valid() {
		return animals.ErrUnknownKind
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = clone(a)
	return nil
}

func (r *AnimalRepo) Update(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.byID[a.ID]
	if !exists || current.Kind != a.Kind {
		return animals.ErrNotFound
	}
	r.byID[a.ID] = clone(a)
	return nil
}

// Delete borra el registro completo (base + subtipo son la misma entrada acá).
func (r *AnimalRepo) Delete(ctx context.Context, kind animals.Kind, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.byID[id]
	if !exists || current.Kind != kind {
		return animals.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *AnimalRepo) GetByID(ctx context.Context, kind animals.Kind, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok || a.Kind != kind {
		return animals.Animal{}, animals.ErrNotFound
	}
	return clone(a), nil
}

func (r *AnimalRepo) List(ctx context.Context, kind animals.Kind) ([]animals.Animal, error) {
	return r.filter(func(a animals.Animal) bool { return a.Kind == kind }), nil
}

func (r *AnimalRepo) ListByCity(ctx context.Context, kind animals.Kind, cityID string) ([]animals.Animal, error) {
	return r.filter(func(a animals.Animal) bool {
		return a.Kind == kind && a.InCity(cityID)
	}), nil
}

func (r *AnimalRepo) FindByTrait(ctx context.Context, probe animals.Animal) (animals.Animal, error) {
	matches := r.filter(probe.SameTrait)
	if len(matches) == 0 {
		return animals.Animal{}, animals.ErrNotFound
	}
	return matches[0], nil
}

// all devuelve una copia de todos los animales (la usa StatsRepo).
func (r *AnimalRepo) all() []animals.Animal {
	return r.filter(func(animals.Animal) bool { return true })
}

// filter devuelve copias ordenadas por id, igual que el ORDER BY del adapter Postgres.
func (r *AnimalRepo) filter(keep func(animals.Animal) bool) []animals.Animal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if keep(a) {
			out = append(out, clone(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// clone evita que el caller comparta los punteros Breed/CityID con el store.
func clone(a animals.Animal) animals.Animal {
	if a.Breed != nil {
		b := *a.Breed
		a.Breed = &b
	}
	if a.CityID != nil {
		c := *a.CityID
		a.CityID = &c
	}
	return a
}
