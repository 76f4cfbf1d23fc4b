package handlers

import (
	"cinemap/models"
	services "cinemap/service"
	"encoding/json"
	"net/http"
)

type PreferencesHandler struct {
	preferences *services.PreferencesService
}

func NewPreferencesHandler(preferences *services.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{preferences: preferences}
}

// GetPreferences handles GET /v1/preferences
func (h *PreferencesHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.preferences.Load())
}

// PutPreferences handles PUT /v1/preferences. Fields missing from the body
// take their default value.
func (h *PreferencesHandler) PutPreferences(w http.ResponseWriter, r *http.Request) {
	cfg := models.DefaultFilterConfig()
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "Invalid preferences body", http.StatusBadRequest)
		return
	}
	if !h.preferences.Save(cfg) {
		http.Error(w, "Preferences could not be saved", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, cfg.Normalize())
}

// DeletePreferences handles DELETE /v1/preferences
func (h *PreferencesHandler) DeletePreferences(w http.ResponseWriter, r *http.Request) {
	if !h.preferences.Reset() {
		http.Error(w, "Preferences could not be reset", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
