package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/cinemap")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, POSITION_SOURCE_IP, cfg.PositionSource)
	assert.Equal(t, 10*time.Second, cfg.PositionTimeout)
	assert.Equal(t, 15*time.Second, cfg.TrackingTimeout)
	assert.Equal(t, DEFAULT_NEAREST_LIMIT, cfg.NearestLimit)
	assert.Equal(t, filepath.Join("/srv/cinemap", "resources", "cinemas_data.json"), cfg.CatalogPath)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CINEMAP_POSITION_SOURCE", "static")
	t.Setenv("CINEMAP_STATIC_LATITUDE", "48.85")
	t.Setenv("CINEMAP_POSITION_TIMEOUT", "3s")
	t.Setenv("CINEMAP_CATALOG_PATH", "/tmp/cinemas.json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, POSITION_SOURCE_STATIC, cfg.PositionSource)
	assert.Equal(t, 48.85, cfg.StaticLatitude)
	assert.Equal(t, 3*time.Second, cfg.PositionTimeout)
	assert.Equal(t, "/tmp/cinemas.json", cfg.CatalogPath)
}

func TestLoadConfig_InvalidPositionSource(t *testing.T) {
	t.Setenv("CINEMAP_POSITION_SOURCE", "gps")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfig_Location(t *testing.T) {
	cfg := &Config{Timezone: "Not/AZone"}
	assert.Equal(t, time.Local, cfg.Location())
}
