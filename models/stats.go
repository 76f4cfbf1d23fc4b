package models

import "cinemap/models/venue"

// BasicStats are the headline numbers of the stats page.
type BasicStats struct {
	TotalCinemas  int     `json:"total_cinemas"`
	AverageRating float64 `json:"average_rating"`
	AveragePrice  float64 `json:"average_price"`
	TotalScreens  int     `json:"total_screens"`
}

// LabelCount is one bar/slice of a distribution, e.g. a genre and the
// number of cinemas screening it.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ShareStat is a count with its percentage of the catalog.
type ShareStat struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type AccessibilityStats struct {
	Accessible ShareStat `json:"accessible"`
	Parking    ShareStat `json:"parking"`
}

// CatalogStats gathers every aggregate shown on the stats page.
type CatalogStats struct {
	Basic         BasicStats         `json:"basic"`
	Departements  []LabelCount       `json:"departements"`
	Genres        []LabelCount       `json:"genres"`
	PriceRanges   []LabelCount       `json:"price_ranges"`
	Services      []LabelCount       `json:"services"`
	Accessibility AccessibilityStats `json:"accessibility"`
	TopRated      []venue.Venue      `json:"top_rated"`
}
