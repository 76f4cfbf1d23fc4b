package services

import (
	"cinemap/filter"
	"cinemap/geo"
	"cinemap/geolocation"
	"cinemap/models"
	"cinemap/models/venue"
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrPositionRequired is returned when the request carries no position
	// and no provider is configured to acquire one.
	ErrPositionRequired = errors.New("position required")
	// ErrInvalidPosition is returned for NaN or out of range coordinates.
	ErrInvalidPosition = errors.New("invalid position")
)

// Rank keeps the venues within radiusKm of pos that pass cfg, nearest
// first. Venues at the same distance keep their catalog order. A positive
// limit truncates the sorted list. A NaN radius matches nothing. The
// result is never nil.
func Rank(
	venues []venue.Venue,
	pos models.Position,
	radiusKm float64,
	cfg models.FilterConfig,
	now time.Time,
	limit int,
) []models.RankedVenue {
	ranked := make([]models.RankedVenue, 0)
	for _, v := range venues {
		d := geo.Distance(pos.Latitude, pos.Longitude, v.Latitude, v.Longitude)
		if !(d <= radiusKm) {
			continue
		}
		if !filter.Matches(v, cfg, now) {
			continue
		}
		ranked = append(ranked, models.RankedVenue{
			Venue:         v,
			DistanceKm:    d,
			DirectionsURL: geo.DirectionsURL(v.Latitude, v.Longitude),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// NearbyRequest describes one proximity search. A nil Position asks the
// service to acquire one. RadiusKm of zero falls back to Filters.RadiusKm.
type NearbyRequest struct {
	Position *models.Position
	RadiusKm float64
	Filters  models.FilterConfig
	Limit    int
}

// ProximityService answers "which cinemas are near me" over the static
// catalog. It holds no per-search state.
type ProximityService struct {
	catalog         *CatalogService
	provider        geolocation.Provider
	positionTimeout time.Duration
	now             func() time.Time
}

// NewProximityService constructs a ProximityService. provider may be nil,
// in which case every request must carry its own position.
func NewProximityService(
	catalog *CatalogService,
	provider geolocation.Provider,
	positionTimeout time.Duration,
	location *time.Location) *ProximityService {

	return &ProximityService{
		catalog:         catalog,
		provider:        provider,
		positionTimeout: positionTimeout,
		now:             func() time.Time { return time.Now().In(location) },
	}
}

// WithClock replaces the clock used for opening hours. Used by tests.
func (ps *ProximityService) WithClock(now func() time.Time) *ProximityService {
	ps.now = now
	return ps
}

// Locate returns the current position through the configured provider.
func (ps *ProximityService) Locate(ctx context.Context) (models.Position, error) {
	if ps.provider == nil {
		return models.Position{}, ErrPositionRequired
	}
	pos, err := geolocation.Acquire(ctx, ps.provider, ps.positionTimeout)
	if err != nil {
		return models.Position{}, fmt.Errorf("failed to acquire position: %w", err)
	}
	return pos, nil
}

// FindNearest runs one search and returns the ranked venues.
func (ps *ProximityService) FindNearest(ctx context.Context, req NearbyRequest) (*models.NearbyResult, error) {
	var pos models.Position
	if req.Position != nil {
		pos = *req.Position
	} else {
		var err error
		if pos, err = ps.Locate(ctx); err != nil {
			return nil, err
		}
	}
	if !pos.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}

	filters := req.Filters.Normalize()
	radius := req.RadiusKm
	if radius <= 0 {
		radius = filters.RadiusKm
	}
	radius = models.ClampRadius(radius)
	filters.RadiusKm = radius

	venues := Rank(ps.catalog.Venues(), pos, radius, filters, ps.now(), req.Limit)

	result := &models.NearbyResult{
		SearchID: uuid.New().String(),
		Center:   pos,
		RadiusKm: radius,
		Filters:  filters,
		Venues:   venues,
		Count:    len(venues),
	}
	log.Printf("[ProximityService] Search %s at %v within %.1f km: %d cinemas",
		result.SearchID, pos, radius, result.Count)
	if result.Count > 0 {
		nearest := result.Venues[0]
		log.Printf("[ProximityService] Nearest: %s at %s",
			nearest.Venue.ToString(), geo.FormatDistance(nearest.DistanceKm))
	}
	return result, nil
}
