package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"city-animals/internal/domain/cities"
)

type CityRepo struct {
	mu     sync.RWMutex
	byID   map[string]cities.City
	byName map[string]string // name -> id
}

func NewCityRepo() *CityRepo {
	return &CityRepo{
		byID:   make(map[string]cities.City),
		byName: make(map[string]string),
	}
}

func (r *CityRepo) Create(ctx context.Context, c cities.City) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" || strings.TrimSpace(c.Name) == "" {
		return errors.New("city id and name required")
	}
	// mismo comportamiento que ON CONFLICT (name) DO NOTHING en Postgres
	if _, exists := r.byName[c.Name]; exists {
		return nil
	}
	r.byID[c.ID] = c
	r.byName[c.Name] = c.ID
	return nil
}

func (r *CityRepo) GetByName(ctx context.Context, name string) (cities.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return cities.City{}, cities.ErrNotFound
	}
	return r.byID[id], nil
}

// List ordena por nombre.
func (r *CityRepo) List(ctx context.Context) ([]cities.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cities.City, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
