package ipgeo

import "context"

// IPGeoAPI resolves the caller's public IP address to an approximate
// location.
type IPGeoAPI interface {
	Locate(ctx context.Context) (*IPLocationResponse, error)
}
