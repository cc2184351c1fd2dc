package cities

// City es una ubicación fija; sólo la crea el seed de arranque.
type City struct {
	ID   string
	Name string
}

// Predefined es la lista cerrada de ciudades que el sistema garantiza al arrancar.
var Predefined = []string{"Frankfurt", "Berlin", "Hamburg", "Munich", "Cologne"}
