package cities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

// Seed asegura una fila por nombre. Se corre en cada arranque: si la ciudad ya
// existe no hace nada, así que repetirlo no duplica ni falla.
func (s *Service) Seed(ctx context.Context, names []string) error {
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		_, err := s.repo.GetByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("lookup city %q: %w", name, err)
		}

		if err := s.repo.Create(ctx, City{ID: s.newID(), Name: name}); err != nil {
			return fmt.Errorf("create city %q: %w", name, err)
		}
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]City, error) {
	return s.repo.List(ctx)
}

// FindByName matchea el nombre exacto (case-sensitive). Devuelve ErrNotFound si no existe.
func (s *Service) FindByName(ctx context.Context, name string) (City, error) {
	return s.repo.GetByName(ctx, name)
}
