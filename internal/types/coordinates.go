package types

type Coords struct {
	Latitude  float64 `json:"latitude" example:"40.71427"`
	Longitude float64 `json:"longitude" example:"-74.00597"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Valid reports whether both components are within range
func (c Coords) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}
