// models/nearby_result.go
package models

import "cinemap/models/venue"

// RankedVenue pairs a venue with its distance to the search center.
type RankedVenue struct {
	Venue      venue.Venue `json:"venue"`
	DistanceKm float64     `json:"distance_km"`
	// DirectionsURL links to driving directions to the venue.
	DirectionsURL string `json:"directions_url,omitempty"`
}

// NearbyResult is what a proximity search hands to the presentation layer:
// the venues ordered by ascending distance, plus the circle they were
// searched in. An empty Venues slice means "no matches".
type NearbyResult struct {
	SearchID string        `json:"search_id"`
	Center   Position      `json:"center"`
	RadiusKm float64       `json:"radius_km"`
	Filters  FilterConfig  `json:"filters"`
	Venues   []RankedVenue `json:"venues"`
	Count    int           `json:"count"`
}
