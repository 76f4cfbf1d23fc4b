package geolocation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"cinemap/api"
	"cinemap/api/ipgeo"
	"cinemap/models"
)

// IPProvider locates the user from their public IP address. The result is
// city-level, so every position carries the configured accuracy.
type IPProvider struct {
	api            ipgeo.IPGeoAPI
	accuracyMeters float64
}

func NewIPProvider(ipGeoAPI ipgeo.IPGeoAPI, accuracyMeters float64) *IPProvider {
	return &IPProvider{api: ipGeoAPI, accuracyMeters: accuracyMeters}
}

func (p *IPProvider) CurrentPosition(ctx context.Context) (models.Position, error) {
	resp, err := p.api.Locate(ctx)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) &&
			(statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden) {
			return models.Position{}, fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		}
		if ctx.Err() != nil {
			return models.Position{}, ctx.Err()
		}
		return models.Position{}, fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
	}

	if resp.Status != ipgeo.STATUS_SUCCESS {
		log.Printf("[IPProvider] Lookup failed: status=%q message=%q", resp.Status, resp.Message)
		return models.Position{}, fmt.Errorf("%w: %s", ErrPositionUnavailable, resp.Message)
	}

	return models.Position{
		Latitude:  resp.Lat,
		Longitude: resp.Lon,
		Accuracy:  p.accuracyMeters,
	}, nil
}
