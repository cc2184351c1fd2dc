package stats

// CatCityStats: una fila por ciudad, Total = 0 si no tiene gatos.
type CatCityStats struct {
	CityID   string
	CityName string
	Total    int
}

// DogBreedStats: una fila por (ciudad, raza). Una ciudad sin perros aparece
// una vez con Breed = nil y MaxBarkDecibels = 0.
type DogBreedStats struct {
	CityID          string
	CityName        string
	Breed           *string
	MaxBarkDecibels float64
}
