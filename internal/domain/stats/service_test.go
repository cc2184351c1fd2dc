package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	cats []CatCityStats
	dogs []DogBreedStats
	err  error
}

func (r *testRepo) CatsPerCity(ctx context.Context) ([]CatCityStats, error) {
	return r.cats, r.err
}

func (r *testRepo) DogsPerCityBreed(ctx context.Context) ([]DogBreedStats, error) {
	return r.dogs, r.err
}

func TestService_PassesRowsThrough(t *testing.T) {
	labrador := "Labrador"
	repo := &testRepo{
		cats: []CatCityStats{{CityID: "1", CityName: "Berlin", Total: 3}},
		dogs: []DogBreedStats{
			{CityID: "1", CityName: "Berlin"},
			{CityID: "2", CityName: "Munich", Breed: &labrador, MaxBarkDecibels: 80},
		},
	}
	svc := NewService(repo)

	cats, err := svc.CatsPerCity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repo.cats, cats)

	dogs, err := svc.DogsPerCityBreed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repo.dogs, dogs)
}

func TestService_PropagatesStorageError(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewService(&testRepo{err: boom})

	_, err := svc.CatsPerCity(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = svc.DogsPerCityBreed(context.Background())
	assert.ErrorIs(t, err, boom)
}
