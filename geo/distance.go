// Package geo holds the great-circle distance used for every proximity
// computation in cinemap.
package geo

import (
	"fmt"
	"math"
	"strconv"
)

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// Distance returns the haversine distance in kilometres between two WGS84
// coordinates given in decimal degrees. Inputs are not validated.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// FormatDistance renders metres under one kilometre, kilometres with one
// decimal otherwise.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1f km", km)
}

// DIRECTIONS_URL_FORMAT opens Google Maps driving directions to a point.
const DIRECTIONS_URL_FORMAT = "https://www.google.com/maps/dir/?api=1&destination=%s,%s&travelmode=driving"

// DirectionsURL returns a Google Maps link for driving to lat, lon.
func DirectionsURL(lat, lon float64) string {
	return fmt.Sprintf(DIRECTIONS_URL_FORMAT,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
