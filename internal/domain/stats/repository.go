package stats

import "context"

// Repository devuelve las filas ya ordenadas por nombre de ciudad y, en perros,
// por raza (nil primero).
type Repository interface {
	CatsPerCity(ctx context.Context) ([]CatCityStats, error)
	DogsPerCityBreed(ctx context.Context) ([]DogBreedStats, error)
}
