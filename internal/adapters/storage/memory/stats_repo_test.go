package memory

import (
	"context"
	"testing"

	"city-animals/internal/domain/animals"
	"city-animals/internal/domain/cities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func seededRepos(t *testing.T) (*CityRepo, *AnimalRepo, map[string]string) {
	t.Helper()
	ctx := context.Background()

	cityRepo := NewCityRepo()
	ids := map[string]string{}
	for i, name := range cities.Predefined {
		id := string(rune('a'+i)) + "-city"
		require.NoError(t, cityRepo.Create(ctx, cities.City{ID: id, Name: name}))
		ids[name] = id
	}
	return cityRepo, NewAnimalRepo(), ids
}

func TestCityRepo_CreateIgnoresDuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := NewCityRepo()

	require.NoError(t, repo.Create(ctx, cities.City{ID: "1", Name: "Berlin"}))
	require.NoError(t, repo.Create(ctx, cities.City{ID: "2", Name: "Berlin"}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "1", all[0].ID)
}

func TestAnimalRepo_KindScoping(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()

	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "a1", Kind: animals.KindCat, FavoriteFish: "tuna"}))

	_, err := repo.GetByID(ctx, animals.KindDog, "a1")
	assert.ErrorIs(t, err, animals.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, animals.KindDog, "a1"), animals.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, animals.Animal{ID: "a1", Kind: animals.KindDog}), animals.ErrNotFound)

	got, err := repo.GetByID(ctx, animals.KindCat, "a1")
	require.NoError(t, err)
	assert.Equal(t, "tuna", got.FavoriteFish)
}

func TestAnimalRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()
	city := "c1"

	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "a1", Kind: animals.KindDog, CityID: &city}))

	got, err := repo.GetByID(ctx, animals.KindDog, "a1")
	require.NoError(t, err)
	*got.CityID = "tampered"

	again, err := repo.GetByID(ctx, animals.KindDog, "a1")
	require.NoError(t, err)
	assert.Equal(t, "c1", *again.CityID)
}

func TestAnimalRepo_FindByTrait_FirstByID(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()

	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "b", Kind: animals.KindDog, BarkDecibels: 70}))
	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "a", Kind: animals.KindDog, BarkDecibels: 70}))
	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "c", Kind: animals.KindDog, BarkDecibels: 70.5}))

	got, err := repo.FindByTrait(ctx, animals.Animal{Kind: animals.KindDog, BarkDecibels: 70})
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)

	_, err = repo.FindByTrait(ctx, animals.Animal{Kind: animals.KindCat, FavoriteFish: "70"})
	assert.ErrorIs(t, err, animals.ErrNotFound)
}

func TestStatsRepo_CatsPerCity_IncludesEmptyCities(t *testing.T) {
	ctx := context.Background()
	cityRepo, animalRepo, ids := seededRepos(t)

	berlin := ids["Berlin"]
	require.NoError(t, animalRepo.Create(ctx, animals.Animal{ID: "c1", Kind: animals.KindCat, FavoriteFish: "tuna", CityID: &berlin}))
	require.NoError(t, animalRepo.Create(ctx, animals.Animal{ID: "c2", Kind: animals.KindCat, FavoriteFish: "cod", CityID: &berlin}))
	// sin ciudad y perros no cuentan
	require.NoError(t, animalRepo.Create(ctx, animals.Animal{ID: "c3", Kind: animals.KindCat, FavoriteFish: "eel"}))
	require.NoError(t, animalRepo.Create(ctx, animals.Animal{ID: "d1", Kind: animals.KindDog, CityID: &berlin}))

	got, err := NewStatsRepo(cityRepo, animalRepo).CatsPerCity(ctx)
	require.NoError(t, err)
	require.Len(t, got, 5)

	totals := map[string]int{}
	for _, s := range got {
		totals[s.CityName] = s.Total
	}
	assert.Equal(t, map[string]int{
		"Berlin": 2, "Cologne": 0, "Frankfurt": 0, "Hamburg": 0, "Munich": 0,
	}, totals)
	assert.Equal(t, "Berlin", got[0].CityName)
}

func TestStatsRepo_DogsPerCityBreed_GroupsByBreed(t *testing.T) {
	ctx := context.Background()
	cityRepo, animalRepo, ids := seededRepos(t)

	hamburg := ids["Hamburg"]
	for i, d := range []animals.Animal{
		{Breed: ptr("Poodle"), BarkDecibels: 60},
		{Breed: ptr("Labrador"), BarkDecibels: 80},
		{Breed: ptr("Labrador"), BarkDecibels: 75},
		{BarkDecibels: 50},
	} {
		d.ID = string(rune('a' + i))
		d.Kind = animals.KindDog
		d.CityID = &hamburg
		require.NoError(t, animalRepo.Create(ctx, d))
	}

	got, err := NewStatsRepo(cityRepo, animalRepo).DogsPerCityBreed(ctx)
	require.NoError(t, err)
	require.Len(t, got, 7) // 4 ciudades vacías + 3 grupos en Hamburg

	var hamburgRows []string
	for _, s := range got {
		if s.CityName != "Hamburg" {
			assert.Nil(t, s.Breed, s.CityName)
			assert.Zero(t, s.MaxBarkDecibels, s.CityName)
			continue
		}
		breed := "<nil>"
		if s.Breed != nil {
			breed = *s.Breed
		}
		hamburgRows = append(hamburgRows, breed)

		switch breed {
		case "Labrador":
			assert.Equal(t, 80.0, s.MaxBarkDecibels)
		case "Poodle":
			assert.Equal(t, 60.0, s.MaxBarkDecibels)
		case "<nil>":
			assert.Equal(t, 50.0, s.MaxBarkDecibels)
		}
	}
	assert.Equal(t, []string{"<nil>", "Labrador", "Poodle"}, hamburgRows)
}
