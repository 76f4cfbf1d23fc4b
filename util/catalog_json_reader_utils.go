package util

import (
	"cinemap/geo"
	"cinemap/models"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadCatalogFromJSON loads the cinema catalog from JSON on disk.
func ReadCatalogFromJSON(filePath string) (*models.Catalog, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var catalog models.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Catalog: %w", err)
	}
	return &catalog, nil
}

// PrintNearbyResult prints a search result, one cinema per line.
func PrintNearbyResult(w io.Writer, result *models.NearbyResult) {
	fmt.Fprintf(w, "Search %s around %v within %.1f km: %d cinema(s)\n",
		result.SearchID, result.Center, result.RadiusKm, result.Count)
	for i, rv := range result.Venues {
		fmt.Fprintf(w, "%2d. %-40s %8s  %.2f€  note %.1f  %s\n",
			i+1, rv.Venue.Name, geo.FormatDistance(rv.DistanceKm), rv.Venue.AveragePrice, rv.Venue.Rating, rv.Venue.City)
	}
}
