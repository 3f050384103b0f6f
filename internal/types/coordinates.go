package types

// Coords is a point in decimal degrees
type Coords struct {
	Latitude  float64
	Longitude float64
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}
