package handlers

import (
	"cinemap/filter"
	"cinemap/geo"
	"cinemap/models"
	"cinemap/models/venue"
	services "cinemap/service"
	"cinemap/util"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

const ID_PATH_VAR = "id"

// CinemaDetail is the body of GET /v1/cinemas/{id}.
type CinemaDetail struct {
	*venue.Venue
	DirectionsURL string `json:"directions_url"`
}

// CinemaList is the body of GET /v1/cinemas.
type CinemaList struct {
	Count   int           `json:"count"`
	Cinemas []venue.Venue `json:"cinemas"`
}

type VenueHandler struct {
	catalog     *services.CatalogService
	proximity   *services.ProximityService
	preferences *services.PreferencesService
}

func NewVenueHandler(
	catalog *services.CatalogService,
	proximity *services.ProximityService,
	preferences *services.PreferencesService) *VenueHandler {

	return &VenueHandler{
		catalog:     catalog,
		proximity:   proximity,
		preferences: preferences,
	}
}

// ListCinemas handles GET /v1/cinemas?genre=&departement=&rating=&service=&q=
func (h *VenueHandler) ListCinemas(w http.ResponseWriter, r *http.Request) {
	q, err := filter.CatalogQueryFromValues(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	cinemas := h.catalog.List(q)
	writeJSON(w, http.StatusOK, CinemaList{Count: len(cinemas), Cinemas: cinemas})
}

// GetCinema handles GET /v1/cinemas/{id}
func (h *VenueHandler) GetCinema(w http.ResponseWriter, r *http.Request) {
	v, err := h.catalog.Get(venue.ID(mux.Vars(r)[ID_PATH_VAR]))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CinemaDetail{
		Venue:         v,
		DirectionsURL: geo.DirectionsURL(v.Latitude, v.Longitude),
	})
}

// GetNearby handles GET /v1/cinemas/nearby. Expects lat and lon, or none of
// them to locate the caller server side; filter arguments override the
// saved preferences.
func (h *VenueHandler) GetNearby(w http.ResponseWriter, r *http.Request) {
	result, err := h.findNearest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetNearbyMap handles GET /v1/cinemas/nearby/map and renders the same
// search as an HTML map.
func (h *VenueHandler) GetNearbyMap(w http.ResponseWriter, r *http.Request) {
	result, err := h.findNearest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderNearbyMap(w, result); err != nil {
		log.Println("Error rendering nearby map:", err)
	}
}

func (h *VenueHandler) findNearest(r *http.Request) (*models.NearbyResult, error) {
	vals := r.URL.Query()

	pos, err := parsePosition(vals)
	if err != nil {
		return nil, err
	}
	filters, err := models.FilterConfigFromValues(vals, h.preferences.Load())
	if err != nil {
		return nil, err
	}
	limit, err := parseOptionalInt(vals, LIMIT_QUERY_ARG)
	if err != nil {
		return nil, err
	}

	return h.proximity.FindNearest(r.Context(), services.NearbyRequest{
		Position: pos,
		Filters:  filters,
		Limit:    limit,
	})
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}
