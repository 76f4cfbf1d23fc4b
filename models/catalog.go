// models/catalog.go
package models

import "cinemap/models/venue"

// Departement is an administrative region of the catalog.
type Departement struct {
	Code string `json:"code"`
	Name string `json:"nom"`
}

// Catalog matches the static cinemas data file.
type Catalog struct {
	Cinemas      []venue.Venue `json:"cinemas"`
	Genres       []string      `json:"genres"`
	Departements []Departement `json:"departements"`
}
