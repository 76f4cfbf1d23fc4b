package services

import (
	"cinemap/filter"
	"cinemap/models"
	"cinemap/models/venue"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() *models.Catalog {
	return &models.Catalog{
		Cinemas: []venue.Venue{
			{ID: "1", Name: "Le Grand Rex", City: "Paris", Departement: "75", Rating: 4.5, AveragePrice: 12.5,
				Genres: []string{"Blockbuster", "Famille"}, Services: []string{"IMAX", "3D"}, Accessible: true, Screens: 7},
			{ID: "2", Name: "Le Champo", City: "Paris", Departement: "75", Rating: 4.7, AveragePrice: 9,
				Genres: []string{"Classique"}, Services: []string{"Art et Essai"}, ArtEtEssai: "oui", Screens: 2},
			{ID: "3", Name: "Pathé Boulogne", City: "Boulogne-Billancourt", Departement: "92", Rating: 4.1, AveragePrice: 14,
				Genres: []string{"Blockbuster"}, Services: []string{"IMAX"}, Parking: true, Accessible: true, Screens: 12},
		},
		Genres:       []string{"Blockbuster", "Famille", "Classique"},
		Departements: []models.Departement{{Code: "75", Name: "Paris"}, {Code: "92", Name: "Hauts-de-Seine"}},
	}
}

func TestCatalogService_List(t *testing.T) {
	cs := NewCatalogService(sampleCatalog())

	tests := []struct {
		name  string
		query filter.CatalogQuery
		want  []venue.ID
	}{
		{"no criteria sorted by rating", filter.CatalogQuery{}, []venue.ID{"2", "1", "3"}},
		{"genre", filter.CatalogQuery{Genre: "Blockbuster"}, []venue.ID{"1", "3"}},
		{"departement", filter.CatalogQuery{Departement: "92"}, []venue.ID{"3"}},
		{"parking service", filter.CatalogQuery{Service: "parking"}, []venue.ID{"3"}},
		{"text", filter.CatalogQuery{Text: "champo"}, []venue.ID{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []venue.ID
			for _, v := range cs.List(tt.query) {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestCatalogService_Get(t *testing.T) {
	cs := NewCatalogService(sampleCatalog())

	v, err := cs.Get("3")
	require.NoError(t, err)
	assert.Equal(t, "Pathé Boulogne", v.Name)

	v, err = cs.Get("pathe-boulogne")
	require.NoError(t, err)
	assert.Equal(t, venue.ID("3"), v.ID)

	_, err = cs.Get("404")
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "le-grand-rex", Slug(venue.Venue{Name: "Le Grand Rex"}))
	assert.Equal(t, "mk2-bibliotheque", Slug(venue.Venue{Name: "MK2 Bibliothèque"}))
}

func TestCatalogService_NilCatalog(t *testing.T) {
	cs := NewCatalogService(nil)

	assert.Empty(t, cs.Venues())
	assert.Empty(t, cs.List(filter.CatalogQuery{}))
}
