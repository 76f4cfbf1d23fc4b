package server

import (
	"cinemap/server/handlers"

	"github.com/gorilla/mux"
)

type Router struct {
	venueHandler       *handlers.VenueHandler
	statsHandler       *handlers.StatsHandler
	preferencesHandler *handlers.PreferencesHandler
	router             *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	venueHandler *handlers.VenueHandler,
	statsHandler *handlers.StatsHandler,
	preferencesHandler *handlers.PreferencesHandler,
	router *mux.Router) *Router {
	return &Router{
		venueHandler:       venueHandler,
		statsHandler:       statsHandler,
		preferencesHandler: preferencesHandler,
		router:             router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")

	// expects ?genre=&departement=&rating=&service=&q=
	r.router.HandleFunc("/v1/cinemas", r.venueHandler.ListCinemas).Methods("GET")
	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={km(float)} plus filter args.
	// Registered before {id} so "nearby" is not read as an id.
	r.router.HandleFunc("/v1/cinemas/nearby", r.venueHandler.GetNearby).Methods("GET")
	r.router.HandleFunc("/v1/cinemas/nearby/map", r.venueHandler.GetNearbyMap).Methods("GET")
	r.router.HandleFunc("/v1/cinemas/{id}", r.venueHandler.GetCinema).Methods("GET")

	r.router.HandleFunc("/v1/stats", r.statsHandler.GetStats).Methods("GET")
	r.router.HandleFunc("/v1/stats/charts", r.statsHandler.GetStatsCharts).Methods("GET")

	r.router.HandleFunc("/v1/preferences", r.preferencesHandler.GetPreferences).Methods("GET")
	r.router.HandleFunc("/v1/preferences", r.preferencesHandler.PutPreferences).Methods("PUT")
	r.router.HandleFunc("/v1/preferences", r.preferencesHandler.DeletePreferences).Methods("DELETE")
}
