package animals

import "strings"

// Kind es el discriminante del registro Animal.
// @Enum cat, dog
type Kind string

const (
	KindCat Kind = "cat"
	KindDog Kind = "dog"
)

// Kinds en el orden en que se registran las rutas.
var Kinds = []Kind{KindCat, KindDog}

func (k Kind) Valid() bool {
	switch k {
	case KindCat, KindDog:
		return true
	default:
		return false
	}
}

// Label es el nombre que aparece en mensajes ("Cat not found").
func (k Kind) Label() string {
	switch k {
	case KindCat:
		return "Cat"
	case KindDog:
		return "Dog"
	default:
		return "Animal"
	}
}

// Plural es el segmento de path (/cats, /dogs).
func (k Kind) Plural() string {
	switch k {
	case KindCat:
		return "cats"
	case KindDog:
		return "dogs"
	default:
		return ""
	}
}

// TraitField es el nombre JSON del campo que define a cada subtipo.
func (k Kind) TraitField() string {
	switch k {
	case KindCat:
		return "favorite_fish"
	case KindDog:
		return "bark_decibels"
	default:
		return ""
	}
}

// Animal es el registro base compartido por gatos y perros.
// Los campos de rasgo sólo tienen sentido para su Kind:
// FavoriteFish para KindCat, BarkDecibels para KindDog.
type Animal struct {
	ID     string
	Kind   Kind
	Breed  *string
	CityID *string

	FavoriteFish string
	BarkDecibels float64
}

// InCity indica si el animal está asignado a cityID.
func (a Animal) InCity(cityID string) bool {
	return a.CityID != nil && *a.CityID == cityID
}

// SameTrait compara el campo definitorio por igualdad exacta.
// Es la clave del upsert por ciudad.
func (a Animal) SameTrait(other Animal) bool {
	if a.Kind != other.Kind {
		return false
	}
	switch a.Kind {
	case KindCat:
		return a.FavoriteFish == other.FavoriteFish
	case KindDog:
		return a.BarkDecibels == other.BarkDecibels
	default:
		return false
	}
}

// Input es el payload de escritura. Punteros: nil = no vino en el request.
type Input struct {
	FavoriteFish *string
	BarkDecibels *float64
	Breed        *string
}

// applyTo pisa los campos de a con los del input. El campo definitorio del
// Kind es obligatorio; breed sólo se toca si vino.
func (in Input) applyTo(a *Animal) error {
	switch a.Kind {
	case KindCat:
		if in.FavoriteFish == nil {
			return ErrInvalidInput
		}
		a.FavoriteFish = *in.FavoriteFish
	case KindDog:
		if in.BarkDecibels == nil {
			return ErrInvalidInput
		}
		a.BarkDecibels = *in.BarkDecibels
	default:
		return ErrUnknownKind
	}

	if in.Breed != nil {
		b := strings.TrimSpace(*in.Breed)
		if b == "" {
			a.Breed = nil
		} else {
			a.Breed = &b
		}
	}
	return nil
}
