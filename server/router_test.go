package server

import (
	"cinemap/dao/redis"
	"cinemap/db"
	"cinemap/geolocation"
	"cinemap/models"
	"cinemap/models/venue"
	"cinemap/server/handlers"
	services "cinemap/service"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *models.Catalog {
	return &models.Catalog{
		Cinemas: []venue.Venue{
			{ID: "1", Name: "Le Grand Rex", Departement: "75", Latitude: 48.8706, Longitude: 2.3479,
				AveragePrice: 12.9, Rating: 4.6, Parking: false, Services: []string{"IMAX"}, Genres: []string{"Blockbuster"}},
			{ID: "2", Name: "Le Champo", Departement: "75", Latitude: 48.8503, Longitude: 2.3431,
				AveragePrice: 9.5, Rating: 4.7, ArtEtEssai: "oui", Genres: []string{"Classique"}},
			{ID: "3", Name: "UGC La Défense", Departement: "92", Latitude: 48.8918, Longitude: 2.2385,
				AveragePrice: 13.5, Rating: 4.1, Parking: true, Genres: []string{"Blockbuster"}},
		},
		Departements: []models.Departement{{Code: "75", Name: "Paris"}, {Code: "92", Name: "Hauts-de-Seine"}},
	}
}

type testApp struct {
	router *mux.Router
	redis  *db.MemoryRedisClient
}

func newTestApp(t *testing.T, provider geolocation.Provider) *testApp {
	t.Helper()
	redisClient := db.NewMemoryRedisClient(context.Background())
	catalog := services.NewCatalogService(testCatalog())
	preferences := services.NewPreferencesService(redis.NewRedisPreferencesDAO(redisClient))
	proximity := services.NewProximityService(catalog, provider, 100*time.Millisecond, time.UTC)
	stats := services.NewStatsService(catalog)

	router := mux.NewRouter()
	NewRouter(
		handlers.NewVenueHandler(catalog, proximity, preferences),
		handlers.NewStatsHandler(stats),
		handlers.NewPreferencesHandler(preferences),
		router,
	).RegisterRoutes()
	return &testApp{router: router, redis: redisClient}
}

func (a *testApp) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_RegisterRoutes(t *testing.T) {
	app := newTestApp(t, nil)

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		contains   string
	}{
		{"Ping Route", "GET", "/ping", http.StatusOK, `"pong"`},
		{"List Cinemas", "GET", "/v1/cinemas", http.StatusOK, `"count":3`},
		{"List Cinemas By Departement", "GET", "/v1/cinemas?departement=92", http.StatusOK, `"count":1`},
		{"Get Cinema", "GET", "/v1/cinemas/2", http.StatusOK, `"nom":"Le Champo"`},
		{"Get Cinema Directions", "GET", "/v1/cinemas/2", http.StatusOK, `"directions_url":"https://www.google.com/maps/dir/?api=1\u0026destination=48.8503,2.3431\u0026travelmode=driving"`},
		{"List Cinemas Invalid Rating", "GET", "/v1/cinemas?rating=abc", http.StatusBadRequest, "invalid argument rating"},
		{"List Cinemas NaN Rating", "GET", "/v1/cinemas?rating=NaN", http.StatusBadRequest, "invalid argument rating"},
		{"List Cinemas By Rating", "GET", "/v1/cinemas?rating=4.5", http.StatusOK, `"count":2`},
		{"Get Cinema By Slug", "GET", "/v1/cinemas/le-grand-rex", http.StatusOK, `"id":"1"`},
		{"Unknown Cinema", "GET", "/v1/cinemas/404", http.StatusNotFound, "venue not found"},
		{"Nearby", "GET", "/v1/cinemas/nearby?lat=48.8566&lon=2.3522", http.StatusOK, `"count":2`},
		{"Nearby Without Position", "GET", "/v1/cinemas/nearby", http.StatusBadRequest, "position required"},
		{"Nearby Invalid Lat", "GET", "/v1/cinemas/nearby?lat=abc&lon=2.35", http.StatusBadRequest, "invalid argument lat"},
		{"Nearby Out Of Range", "GET", "/v1/cinemas/nearby?lat=123&lon=2.35", http.StatusBadRequest, "invalid position"},
		{"Nearby Invalid Radius", "GET", "/v1/cinemas/nearby?lat=48.85&lon=2.35&radius=far", http.StatusBadRequest, "invalid argument radius"},
		{"Nearby NaN Radius", "GET", "/v1/cinemas/nearby?lat=48.85&lon=2.35&radius=NaN", http.StatusBadRequest, "invalid argument radius"},
		{"Nearby Infinite Radius", "GET", "/v1/cinemas/nearby?lat=48.85&lon=2.35&radius=Inf", http.StatusBadRequest, "invalid argument radius"},
		{"Nearby NaN Max Price", "GET", "/v1/cinemas/nearby?lat=48.85&lon=2.35&max_price=NaN", http.StatusBadRequest, "invalid argument max_price"},
		{"Nearby NaN Lat", "GET", "/v1/cinemas/nearby?lat=NaN&lon=2.35", http.StatusBadRequest, "invalid position"},
		{"Nearby Directions", "GET", "/v1/cinemas/nearby?lat=48.8566&lon=2.3522", http.StatusOK, `"directions_url":"https://www.google.com/maps/dir/?api=1\u0026destination=48.8503,2.3431\u0026travelmode=driving"`},
		{"Nearby Map", "GET", "/v1/cinemas/nearby/map?lat=48.8566&lon=2.3522", http.StatusOK, "Le Champo"},
		{"Stats", "GET", "/v1/stats", http.StatusOK, `"total_cinemas":3`},
		{"Stats Charts", "GET", "/v1/stats/charts", http.StatusOK, "Hauts-de-Seine"},
		{"Invalid Route", "GET", "/invalid", http.StatusNotFound, ""},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr := app.do(test.method, test.path, "")

			assert.Equal(t, test.statusCode, rr.Code, rr.Body.String())
			if test.contains != "" {
				assert.Contains(t, rr.Body.String(), test.contains)
			}
		})
	}
}

func TestRouter_NearbyOrderingAndFilters(t *testing.T) {
	app := newTestApp(t, nil)

	rr := app.do("GET", "/v1/cinemas/nearby?lat=48.8566&lon=2.3522&radius=20", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var result models.NearbyResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.Equal(t, 3, result.Count)
	assert.Equal(t, venue.ID("2"), result.Venues[0].Venue.ID)
	assert.Equal(t, venue.ID("1"), result.Venues[1].Venue.ID)
	assert.Equal(t, venue.ID("3"), result.Venues[2].Venue.ID)

	rr = app.do("GET", "/v1/cinemas/nearby?lat=48.8566&lon=2.3522&radius=20&parking=true", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.Equal(t, 1, result.Count)
	assert.Equal(t, venue.ID("3"), result.Venues[0].Venue.ID)

	rr = app.do("GET", "/v1/cinemas/nearby?lat=48.8566&lon=2.3522&radius=20&limit=1", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Count)
}

func TestRouter_NearbyUsesSavedPreferences(t *testing.T) {
	app := newTestApp(t, nil)

	rr := app.do("PUT", "/v1/preferences", `{"radius_km": 20, "max_price": 10}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var result models.NearbyResult
	rr = app.do("GET", "/v1/cinemas/nearby?lat=48.8566&lon=2.3522", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.Equal(t, 1, result.Count)
	assert.Equal(t, venue.ID("2"), result.Venues[0].Venue.ID)
	assert.Equal(t, 20.0, result.RadiusKm)

	// Query arguments override the saved configuration.
	rr = app.do("GET", "/v1/cinemas/nearby?lat=48.8566&lon=2.3522&max_price=0", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 3, result.Count)
}

func TestRouter_NearbyGeolocationErrors(t *testing.T) {
	tests := []struct {
		name       string
		provider   geolocation.Provider
		statusCode int
	}{
		{"located server side", geolocation.NewStaticProvider(48.8566, 2.3522), http.StatusOK},
		{"permission denied", geolocation.ProviderFunc(func(ctx context.Context) (models.Position, error) {
			return models.Position{}, geolocation.ErrPermissionDenied
		}), http.StatusForbidden},
		{"position unavailable", geolocation.ProviderFunc(func(ctx context.Context) (models.Position, error) {
			return models.Position{}, geolocation.ErrPositionUnavailable
		}), http.StatusServiceUnavailable},
		{"timeout", geolocation.ProviderFunc(func(ctx context.Context) (models.Position, error) {
			<-ctx.Done()
			return models.Position{}, ctx.Err()
		}), http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, tt.provider)

			rr := app.do("GET", "/v1/cinemas/nearby", "")

			assert.Equal(t, tt.statusCode, rr.Code, rr.Body.String())
		})
	}
}

func TestRouter_Preferences(t *testing.T) {
	app := newTestApp(t, nil)

	rr := app.do("GET", "/v1/preferences", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var cfg models.FilterConfig
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cfg))
	assert.Equal(t, models.DefaultFilterConfig(), cfg)

	rr = app.do("PUT", "/v1/preferences", `{"radius_km": 8, "only_open": true, "services": ["IMAX"]}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = app.do("GET", "/v1/preferences", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cfg))
	assert.Equal(t, 8.0, cfg.RadiusKm)
	assert.Equal(t, 25.0, cfg.MaxPrice)
	assert.True(t, cfg.OnlyOpen)
	assert.Equal(t, []string{"IMAX"}, cfg.Services)

	rr = app.do("PUT", "/v1/preferences", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = app.do("DELETE", "/v1/preferences", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	app.redis.FailWith(errors.New("connection refused"))
	rr = app.do("PUT", "/v1/preferences", `{"radius_km": 8}`)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	rr = app.do("GET", "/v1/preferences", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}
