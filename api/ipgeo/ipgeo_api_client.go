package ipgeo

import (
	"context"

	"cinemap/api"
)

const LOCATE_ENDPOINT = "/json/?fields=status,message,query,city,regionName,country,lat,lon,timezone"

// IPGeoApiClient embeds the common HTTPClient
type IPGeoApiClient struct {
	*api.HTTPClient
}

// NewIPGeoApiClient creates a new instance of IPGeoApiClient
func NewIPGeoApiClient(httpClient *api.HTTPClient) *IPGeoApiClient {
	return &IPGeoApiClient{
		HTTPClient: httpClient,
	}
}

// Locate looks up the location of the public address the request leaves from.
func (c *IPGeoApiClient) Locate(ctx context.Context) (*IPLocationResponse, error) {
	var response IPLocationResponse
	err := c.RequestContext(ctx, "GET", LOCATE_ENDPOINT, nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
