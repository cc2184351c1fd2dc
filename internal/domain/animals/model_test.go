package animals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Exhaustive(t *testing.T) {
	for _, k := range Kinds {
		assert.True(t, k.Valid())
		assert.NotEqual(t, "Animal", k.Label())
		assert.NotEmpty(t, k.Plural())
		assert.NotEmpty(t, k.TraitField())
	}

	unknown := Kind("parrot")
	assert.False(t, unknown.Valid())
	assert.Empty(t, unknown.Plural())
}

func TestAnimal_SameTrait(t *testing.T) {
	cat := Animal{Kind: KindCat, FavoriteFish: "tuna"}
	dog := Animal{Kind: KindDog, BarkDecibels: 80}

	assert.True(t, cat.SameTrait(Animal{Kind: KindCat, FavoriteFish: "tuna"}))
	assert.False(t, cat.SameTrait(Animal{Kind: KindCat, FavoriteFish: "Tuna"}))
	assert.True(t, dog.SameTrait(Animal{Kind: KindDog, BarkDecibels: 80.0}))
	assert.False(t, dog.SameTrait(Animal{Kind: KindDog, BarkDecibels: 80.1}))
	assert.False(t, cat.SameTrait(dog))
}

func TestInput_ApplyTo(t *testing.T) {
	fish := "tuna"
	breed := "  "

	a := Animal{Kind: KindCat, Breed: &fish}
	require.NoError(t, Input{FavoriteFish: &fish, Breed: &breed}.applyTo(&a))
	assert.Equal(t, "tuna", a.FavoriteFish)
	assert.Nil(t, a.Breed, "breed en blanco se limpia")

	dog := Animal{Kind: KindDog}
	assert.ErrorIs(t, Input{FavoriteFish: &fish}.applyTo(&dog), ErrInvalidInput)

	other := Animal{Kind: "parrot"}
	assert.ErrorIs(t, Input{}.applyTo(&other), ErrUnknownKind)
}
