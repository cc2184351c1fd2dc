package animals

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("animal not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownKind  = errors.New("unknown animal kind")
)

// Repository persiste el registro base y el del subtipo como una unidad.
// Todas las lecturas filtran por Kind: un id de perro no existe para /cats.
type Repository interface {
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	Delete(ctx context.Context, kind Kind, id string) error
	GetByID(ctx context.Context, kind Kind, id string) (Animal, error)
	List(ctx context.Context, kind Kind) ([]Animal, error)
	ListByCity(ctx context.Context, kind Kind, cityID string) ([]Animal, error)

	// FindByTrait busca el primer animal (orden por id) cuyo campo definitorio
	// sea igual al de probe.
	FindByTrait(ctx context.Context, probe Animal) (Animal, error)
}
