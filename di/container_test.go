package di

import (
	"cinemap/config"
	"cinemap/db"
	"cinemap/geolocation"
	services "cinemap/service"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(source string) *config.Config {
	return &config.Config{
		Env:              "test",
		HTTPAddr:         ":0",
		RedisAddress:     "127.0.0.1:1", // nothing listens here
		CatalogPath:      filepath.Join("..", "resources", "cinemas_data.json"),
		Timezone:         "Europe/Paris",
		PositionSource:   source,
		StaticLatitude:   48.8566,
		StaticLongitude:  2.3522,
		IPAccuracyMeters: 5000,
		PositionTimeout:  time.Second,
		TrackingTimeout:  time.Second,
		TrackingInterval: time.Second,
		NearestLimit:     5,
	}
}

func TestNewContainer_FallsBackToMemoryStore(t *testing.T) {
	c, err := NewContainer(testConfig(config.POSITION_SOURCE_STATIC))
	require.NoError(t, err)
	defer c.Close()

	assert.IsType(t, &db.MemoryRedisClient{}, c.RedisClient)
	assert.IsType(t, &geolocation.StaticProvider{}, c.PositionProvider)
	assert.NotEmpty(t, c.CatalogService.Venues())
	assert.True(t, c.PreferencesService.Save(c.PreferencesService.Load()))
}

func TestNewContainer_MockIPProviderOutsideProd(t *testing.T) {
	c, err := NewContainer(testConfig(config.POSITION_SOURCE_IP))
	require.NoError(t, err)
	defer c.Close()

	assert.IsType(t, &geolocation.IPProvider{}, c.PositionProvider)
	result, err := c.ProximityService.FindNearest(context.Background(), services.NearbyRequest{})
	require.NoError(t, err)
	assert.InDelta(t, 48.8566, result.Center.Latitude, 1e-9)
	assert.Equal(t, 5000.0, result.Center.Accuracy)
}

func TestNewContainer_MissingCatalog(t *testing.T) {
	cfg := testConfig(config.POSITION_SOURCE_STATIC)
	cfg.CatalogPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := NewContainer(cfg)
	assert.Error(t, err)
}
