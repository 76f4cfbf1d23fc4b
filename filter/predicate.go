// Package filter decides which venues satisfy the user's criteria.
package filter

import (
	"time"

	"cinemap/models"
	"cinemap/models/venue"
)

// Matches reports whether v passes every enabled criterion of cfg at now.
// Criteria are checked in a fixed order and the first failure rejects.
func Matches(v venue.Venue, cfg models.FilterConfig, now time.Time) bool {
	if cfg.MaxPrice > 0 && v.AveragePrice > cfg.MaxPrice {
		return false
	}
	if cfg.OnlyOpen && !v.Schedule.IsOpenAt(now) {
		return false
	}
	if cfg.RequireParking && !v.Parking {
		return false
	}
	if cfg.RequireAccessible && !v.Accessible {
		return false
	}
	if cfg.ArtEtEssai && v.ArtEtEssai != venue.ART_ET_ESSAI_MARKER {
		return false
	}
	if len(cfg.Services) > 0 && !hasAnyService(v, cfg.Services) {
		return false
	}
	return true
}

func hasAnyService(v venue.Venue, wanted []string) bool {
	for _, s := range wanted {
		if v.HasService(s) {
			return true
		}
	}
	return false
}
