package di

import (
	"cinemap/api"
	"cinemap/api/ipgeo"
	"cinemap/config"
	"cinemap/dao/redis"
	"cinemap/db"
	"cinemap/geolocation"
	"cinemap/server"
	"cinemap/server/handlers"
	services "cinemap/service"
	"cinemap/util"
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

const PROD_ENV = "prod"

// REDIS_DIAL_TIMEOUT keeps startup short when Redis is down.
const REDIS_DIAL_TIMEOUT = 2 * time.Second

// Container holds all application dependencies.
type Container struct {
	Config             *config.Config
	RedisClient        db.RedisClient
	PreferencesDao     *redis.RedisPreferencesDAO
	IPGeoAPI           ipgeo.IPGeoAPI
	PositionProvider   geolocation.Provider
	Tracker            *geolocation.Tracker
	CatalogService     *services.CatalogService
	ProximityService   *services.ProximityService
	StatsService       *services.StatsService
	PreferencesService *services.PreferencesService
	VenueHandler       *handlers.VenueHandler
	StatsHandler       *handlers.StatsHandler
	PreferencesHandler *handlers.PreferencesHandler
	MuxRouter          *mux.Router
	Router             *server.Router
	CinemapHttpServer  *server.CinemapHttpServer

	closers []func() error
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Printf("initializing container - env: %s", cfg.Env)
	ctx := context.Background()
	c := &Container{Config: cfg}

	// Catalog
	catalog, err := util.ReadCatalogFromJSON(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Printf("Loaded %d cinemas from %s", len(catalog.Cinemas), cfg.CatalogPath)

	// Preference store, falling back to memory when Redis is unreachable
	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,

		DialTimeout: REDIS_DIAL_TIMEOUT,
	})
	kvClient := db.NewKVRedisClient(ctx, redisInternalClient)
	if err := kvClient.Ping(); err != nil {
		log.Printf("Redis unreachable at %s (%v), keeping preferences in memory", cfg.RedisAddress, err)
		_ = kvClient.Close()
		c.RedisClient = db.NewMemoryRedisClient(ctx)
	} else {
		c.RedisClient = kvClient
		c.closers = append(c.closers, kvClient.Close)
	}
	c.PreferencesDao = redis.NewRedisPreferencesDAO(c.RedisClient)

	// Position source
	switch cfg.PositionSource {
	case config.POSITION_SOURCE_STATIC:
		log.Printf("Using static position (%f, %f)", cfg.StaticLatitude, cfg.StaticLongitude)
		c.PositionProvider = geolocation.NewStaticProvider(cfg.StaticLatitude, cfg.StaticLongitude)
	default:
		if cfg.Env != PROD_ENV {
			log.Printf("Using mock ip geolocation api")
			c.IPGeoAPI = ipgeo.NewIPGeoApiClientMock(&ipgeo.IPLocationResponse{
				Status: ipgeo.STATUS_SUCCESS,
				City:   "Paris",
				Lat:    cfg.StaticLatitude,
				Lon:    cfg.StaticLongitude,
			})
		} else {
			log.Printf("Using prod ip geolocation api")
			c.IPGeoAPI = ipgeo.NewIPGeoApiClient(api.NewHTTPClient(cfg.IPGeolocationEndpoint))
		}
		c.PositionProvider = geolocation.NewIPProvider(c.IPGeoAPI, cfg.IPAccuracyMeters)
	}
	c.Tracker = geolocation.NewTracker(c.PositionProvider, cfg.TrackingInterval, cfg.TrackingTimeout)

	// Services
	c.CatalogService = services.NewCatalogService(catalog)
	c.ProximityService = services.NewProximityService(c.CatalogService, c.PositionProvider, cfg.PositionTimeout, cfg.Location())
	c.StatsService = services.NewStatsService(c.CatalogService)
	c.PreferencesService = services.NewPreferencesService(c.PreferencesDao)

	// HTTP
	c.VenueHandler = handlers.NewVenueHandler(c.CatalogService, c.ProximityService, c.PreferencesService)
	c.StatsHandler = handlers.NewStatsHandler(c.StatsService)
	c.PreferencesHandler = handlers.NewPreferencesHandler(c.PreferencesService)
	c.MuxRouter = mux.NewRouter()
	c.Router = server.NewRouter(c.VenueHandler, c.StatsHandler, c.PreferencesHandler, c.MuxRouter)
	c.CinemapHttpServer = server.NewCinemapHttpServer(c.Router, c.MuxRouter, cfg.HTTPAddr)

	return c, nil
}

// Close releases external connections.
func (c *Container) Close() {
	c.Tracker.Stop()
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			log.Printf("Error closing container resource: %v", err)
		}
	}
}
