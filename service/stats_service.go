package services

import (
	"cinemap/config"
	"cinemap/filter"
	"cinemap/models"
	"cinemap/models/venue"
	"math"
	"sort"
)

const (
	PRICE_RANGE_LOW    = "Économique (< 10€)"
	PRICE_RANGE_MEDIUM = "Moyen (10-13€)"
	PRICE_RANGE_HIGH   = "Premium (> 13€)"

	// GENRE_CHART_LIMIT caps the genre popularity list.
	GENRE_CHART_LIMIT = 10
)

// StatsService computes catalog-wide aggregates for the stats page.
type StatsService struct {
	catalog *CatalogService
}

func NewStatsService(catalog *CatalogService) *StatsService {
	return &StatsService{catalog: catalog}
}

// Compute gathers every aggregate. topRated <= 0 uses the default limit.
func (ss *StatsService) Compute(topRated int) models.CatalogStats {
	if topRated <= 0 {
		topRated = config.DEFAULT_TOP_RATED_LIMIT
	}
	return models.CatalogStats{
		Basic:         ss.Basic(),
		Departements:  ss.DepartementDistribution(),
		Genres:        ss.GenrePopularity(),
		PriceRanges:   ss.PriceRanges(),
		Services:      ss.ServicePopularity(),
		Accessibility: ss.Accessibility(),
		TopRated:      ss.TopRated(topRated),
	}
}

// Basic returns totals and averages. An empty catalog yields zeros.
func (ss *StatsService) Basic() models.BasicStats {
	venues := ss.catalog.Venues()
	if len(venues) == 0 {
		return models.BasicStats{}
	}
	var rating, price float64
	var screens int
	for _, v := range venues {
		rating += v.Rating
		price += v.AveragePrice
		screens += v.Screens
	}
	n := float64(len(venues))
	return models.BasicStats{
		TotalCinemas:  len(venues),
		AverageRating: rating / n,
		AveragePrice:  price / n,
		TotalScreens:  screens,
	}
}

// DepartementDistribution counts cinemas per departement, labelled by
// departement name when the catalog knows it, in first-seen order.
func (ss *StatsService) DepartementDistribution() []models.LabelCount {
	names := make(map[string]string)
	for _, d := range ss.catalog.Departements() {
		names[d.Code] = d.Name
	}

	counter := newLabelCounter()
	for _, v := range ss.catalog.Venues() {
		label := v.Departement
		if name, ok := names[v.Departement]; ok && name != "" {
			label = name
		}
		counter.add(label)
	}
	return counter.counts
}

// GenrePopularity returns the most screened genres, most popular first.
func (ss *StatsService) GenrePopularity() []models.LabelCount {
	counter := newLabelCounter()
	for _, v := range ss.catalog.Venues() {
		for _, g := range v.Genres {
			counter.add(g)
		}
	}
	genres := counter.sortedByCount()
	if len(genres) > GENRE_CHART_LIMIT {
		genres = genres[:GENRE_CHART_LIMIT]
	}
	return genres
}

// PriceRanges buckets cinemas by average price: below 10, 10 to 13
// inclusive, above 13.
func (ss *StatsService) PriceRanges() []models.LabelCount {
	ranges := []models.LabelCount{
		{Label: PRICE_RANGE_LOW},
		{Label: PRICE_RANGE_MEDIUM},
		{Label: PRICE_RANGE_HIGH},
	}
	for _, v := range ss.catalog.Venues() {
		switch {
		case v.AveragePrice < 10:
			ranges[0].Count++
		case v.AveragePrice <= 13:
			ranges[1].Count++
		default:
			ranges[2].Count++
		}
	}
	return ranges
}

// ServicePopularity counts service tags, most offered first.
func (ss *StatsService) ServicePopularity() []models.LabelCount {
	counter := newLabelCounter()
	for _, v := range ss.catalog.Venues() {
		for _, s := range v.Services {
			counter.add(s)
		}
	}
	return counter.sortedByCount()
}

func (ss *StatsService) Accessibility() models.AccessibilityStats {
	venues := ss.catalog.Venues()
	var accessible, parking int
	for _, v := range venues {
		if v.Accessible {
			accessible++
		}
		if v.Parking {
			parking++
		}
	}
	return models.AccessibilityStats{
		Accessible: share(accessible, len(venues)),
		Parking:    share(parking, len(venues)),
	}
}

// TopRated returns the limit best rated cinemas.
func (ss *StatsService) TopRated(limit int) []venue.Venue {
	top := filter.SortByRating(ss.catalog.Venues())
	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}
	return top
}

func share(count, total int) models.ShareStat {
	if total == 0 {
		return models.ShareStat{}
	}
	pct := float64(count) / float64(total) * 100
	return models.ShareStat{Count: count, Percentage: math.Round(pct*10) / 10}
}

// labelCounter counts occurrences while remembering first-seen order.
type labelCounter struct {
	index  map[string]int
	counts []models.LabelCount
}

func newLabelCounter() *labelCounter {
	return &labelCounter{index: make(map[string]int), counts: []models.LabelCount{}}
}

func (c *labelCounter) add(label string) {
	i, ok := c.index[label]
	if !ok {
		i = len(c.counts)
		c.index[label] = i
		c.counts = append(c.counts, models.LabelCount{Label: label})
	}
	c.counts[i].Count++
}

// sortedByCount orders by count descending; ties keep first-seen order.
func (c *labelCounter) sortedByCount() []models.LabelCount {
	sorted := make([]models.LabelCount, len(c.counts))
	copy(sorted, c.counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	return sorted
}
