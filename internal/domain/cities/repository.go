package cities

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven los adapters cuando no existe la ciudad.
var ErrNotFound = errors.New("city not found")

type Repository interface {
	Create(ctx context.Context, c City) error
	GetByName(ctx context.Context, name string) (City, error)
	List(ctx context.Context) ([]City, error)
}
