package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Environment prefix for every variable read by LoadConfig (CINEMAP_HTTP_ADDR, ...).
const ENV_VAR_PREFIX = "CINEMAP"

// Search defaults
const DEFAULT_SEARCH_RADIUS_KM = 5.0
const MIN_SEARCH_RADIUS_KM = 1.0
const MAX_SEARCH_RADIUS_KM = 50.0
const DEFAULT_MAX_PRICE = 25.0
const DEFAULT_NEAREST_LIMIT = 5
const DEFAULT_TOP_RATED_LIMIT = 5

// Preference store
const PREFERENCES_KEY_PREFIX = "cinemap_"
const GEOLOCATION_PREFERENCES_KEY = "geolocation_preferences"

// Geolocation
const POSITION_SOURCE_IP = "ip"
const POSITION_SOURCE_STATIC = "static"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const CINEMAS_DATA_RESOURCE = "cinemas_data.json"

// Config holds the runtime values. Every field can be overridden with
// CINEMAP_<TAG>; a .env file in the working directory is read first.
type Config struct {
	Env      string `envconfig:"ENV" default:"dev"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	RedisAddress  string `envconfig:"REDIS_ADDR" default:"redis:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	CatalogPath string `envconfig:"CATALOG_PATH"`
	Timezone    string `envconfig:"TIMEZONE" default:"Europe/Paris"`

	PositionSource        string        `envconfig:"POSITION_SOURCE" default:"ip"`
	StaticLatitude        float64       `envconfig:"STATIC_LATITUDE" default:"48.8566"`
	StaticLongitude       float64       `envconfig:"STATIC_LONGITUDE" default:"2.3522"`
	IPGeolocationEndpoint string        `envconfig:"IP_GEOLOCATION_ENDPOINT" default:"http://ip-api.com"`
	IPAccuracyMeters      float64       `envconfig:"IP_ACCURACY_METERS" default:"5000"`
	PositionTimeout       time.Duration `envconfig:"POSITION_TIMEOUT" default:"10s"`
	TrackingTimeout       time.Duration `envconfig:"TRACKING_TIMEOUT" default:"15s"`
	TrackingInterval      time.Duration `envconfig:"TRACKING_INTERVAL" default:"30s"`
	NearestLimit          int           `envconfig:"NEAREST_LIMIT" default:"5"`
}

// LoadConfig reads .env (if present) and then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	var c Config
	if err := envconfig.Process(ENV_VAR_PREFIX, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}
	if c.CatalogPath == "" {
		c.CatalogPath = GetResourcePath(CINEMAS_DATA_RESOURCE)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	switch c.PositionSource {
	case POSITION_SOURCE_IP, POSITION_SOURCE_STATIC:
	default:
		return fmt.Errorf("invalid position source %q: want %q or %q",
			c.PositionSource, POSITION_SOURCE_IP, POSITION_SOURCE_STATIC)
	}
	if c.PositionTimeout <= 0 || c.TrackingTimeout <= 0 {
		return errors.New("position and tracking timeouts must be positive")
	}
	if c.TrackingInterval <= 0 {
		return errors.New("tracking interval must be positive")
	}
	return nil
}

// Location resolves the configured timezone, falling back to the local one.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
