package stats

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CatsPerCity(ctx context.Context) ([]CatCityStats, error) {
	return s.repo.CatsPerCity(ctx)
}

func (s *Service) DogsPerCityBreed(ctx context.Context) ([]DogBreedStats, error) {
	return s.repo.DogsPerCityBreed(ctx)
}
