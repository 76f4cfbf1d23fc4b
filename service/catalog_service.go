package services

import (
	"cinemap/filter"
	"cinemap/models"
	"cinemap/models/venue"
	"errors"
	"fmt"

	"github.com/gosimple/slug"
)

// ErrVenueNotFound is returned by Get for unknown ids.
var ErrVenueNotFound = errors.New("venue not found")

// CatalogService serves the static cinema catalog. It is loaded once and
// never mutated, so it is safe for concurrent use.
type CatalogService struct {
	catalog *models.Catalog
	byID    map[venue.ID]int
	bySlug  map[string]int
}

// NewCatalogService indexes the catalog by venue id and by name slug. When
// two names share a slug the first one wins.
func NewCatalogService(catalog *models.Catalog) *CatalogService {
	if catalog == nil {
		catalog = &models.Catalog{}
	}
	byID := make(map[venue.ID]int, len(catalog.Cinemas))
	bySlug := make(map[string]int, len(catalog.Cinemas))
	for i, v := range catalog.Cinemas {
		byID[v.ID] = i
		if s := Slug(v); s != "" {
			if _, taken := bySlug[s]; !taken {
				bySlug[s] = i
			}
		}
	}
	return &CatalogService{catalog: catalog, byID: byID, bySlug: bySlug}
}

// Slug returns the URL-friendly form of the venue name, e.g. "le-grand-rex".
func Slug(v venue.Venue) string {
	return slug.Make(v.Name)
}

// Venues returns the full catalog in file order. Callers must not modify it.
func (cs *CatalogService) Venues() []venue.Venue {
	return cs.catalog.Cinemas
}

// List returns the venues matching q, best rated first.
func (cs *CatalogService) List(q filter.CatalogQuery) []venue.Venue {
	return filter.SortByRating(q.Apply(cs.catalog.Cinemas))
}

// Get looks a venue up by id, then by name slug.
func (cs *CatalogService) Get(id venue.ID) (*venue.Venue, error) {
	i, ok := cs.byID[id]
	if !ok {
		i, ok = cs.bySlug[string(id)]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, id)
	}
	v := cs.catalog.Cinemas[i]
	return &v, nil
}

func (cs *CatalogService) Genres() []string {
	return cs.catalog.Genres
}

func (cs *CatalogService) Departements() []models.Departement {
	return cs.catalog.Departements
}
