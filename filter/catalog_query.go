package filter

import (
	"net/url"
	"sort"
	"strings"

	"cinemap/models"
	"cinemap/models/venue"
)

// ALL disables a CatalogQuery criterion, like an empty value does.
const ALL = "all"

// PARKING_SERVICE is matched against the parking flag instead of the
// service tags.
const PARKING_SERVICE = "parking"

// CatalogQuery holds the list-view criteria: genre, departement, minimum
// rating, one service and a free-text search.
type CatalogQuery struct {
	Genre       string
	Departement string
	MinRating   float64
	Service     string
	Text        string
}

// RATING_QUERY_ARG is the minimum rating argument of the list view.
const RATING_QUERY_ARG = "rating"

// CatalogQueryFromValues reads genre, departement, rating, service and q.
// A rating that is not a finite number is a *models.QueryArgError.
func CatalogQueryFromValues(vals url.Values) (CatalogQuery, error) {
	var rating float64
	if s := vals.Get(RATING_QUERY_ARG); s != "" {
		r, err := models.ParseFiniteFloat(RATING_QUERY_ARG, s)
		if err != nil {
			return CatalogQuery{}, err
		}
		rating = r
	}
	return CatalogQuery{
		Genre:       vals.Get("genre"),
		Departement: vals.Get("departement"),
		MinRating:   rating,
		Service:     vals.Get("service"),
		Text:        vals.Get("q"),
	}, nil
}

// Apply returns the venues matching q, in catalog order.
func (q CatalogQuery) Apply(venues []venue.Venue) []venue.Venue {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]venue.Venue, 0, len(venues))
	for _, v := range venues {
		if enabled(q.Genre) && !v.HasGenre(q.Genre) {
			continue
		}
		if enabled(q.Departement) && v.Departement != q.Departement {
			continue
		}
		if q.MinRating > 0 && v.Rating < q.MinRating {
			continue
		}
		if enabled(q.Service) && !hasCatalogService(v, q.Service) {
			continue
		}
		if text != "" && !containsText(v, text) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// SortByRating orders venues by rating, best first. Equal ratings keep
// their relative order.
func SortByRating(venues []venue.Venue) []venue.Venue {
	sorted := make([]venue.Venue, len(venues))
	copy(sorted, venues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	return sorted
}

func enabled(criterion string) bool {
	return criterion != "" && criterion != ALL
}

func hasCatalogService(v venue.Venue, service string) bool {
	if service == PARKING_SERVICE {
		return v.Parking
	}
	return v.HasService(service)
}

func containsText(v venue.Venue, text string) bool {
	if strings.Contains(strings.ToLower(v.Name), text) ||
		strings.Contains(strings.ToLower(v.City), text) ||
		strings.Contains(strings.ToLower(v.Address), text) {
		return true
	}
	for _, g := range v.Genres {
		if strings.Contains(strings.ToLower(g), text) {
			return true
		}
	}
	return false
}
