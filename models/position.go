package models

import (
	"fmt"
	"math"
)

// Position is the user's location. Accuracy is in metres and is zero when
// unknown.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy,omitempty"`
}

// Valid reports whether the coordinates are finite WGS84 degrees.
func (p Position) Valid() bool {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) ||
		math.IsInf(p.Latitude, 0) || math.IsInf(p.Longitude, 0) {
		return false
	}
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

func (p Position) String() string {
	return fmt.Sprintf("(%.6f, %.6f ±%.0fm)", p.Latitude, p.Longitude, p.Accuracy)
}
