package services

import (
	"cinemap/config"
	"cinemap/models"
	"log"
)

// PreferenceStore is an opaque key/value store holding JSON values.
type PreferenceStore interface {
	GetItem(key string, dest interface{}) (bool, error)
	SetItem(key string, value interface{}) error
	RemoveItem(key string) error
	Clear() error
}

// PreferencesService persists the user's search configuration. Storage
// failures are logged and never surface as errors: the app keeps working
// with defaults.
type PreferencesService struct {
	store PreferenceStore
}

func NewPreferencesService(store PreferenceStore) *PreferencesService {
	return &PreferencesService{store: store}
}

// Load returns the saved configuration, or the defaults when nothing is
// saved or the store cannot be read.
func (ps *PreferencesService) Load() models.FilterConfig {
	cfg := models.DefaultFilterConfig()
	found, err := ps.store.GetItem(config.GEOLOCATION_PREFERENCES_KEY, &cfg)
	if err != nil {
		log.Printf("[PreferencesService] Failed to load preferences, using defaults: %v", err)
		return models.DefaultFilterConfig()
	}
	if !found {
		return models.DefaultFilterConfig()
	}
	if cfg.Services == nil {
		cfg.Services = []string{}
	}
	return cfg.Normalize()
}

// Save persists cfg and reports whether it was stored.
func (ps *PreferencesService) Save(cfg models.FilterConfig) bool {
	if err := ps.store.SetItem(config.GEOLOCATION_PREFERENCES_KEY, cfg.Normalize()); err != nil {
		log.Printf("[PreferencesService] Failed to save preferences: %v", err)
		return false
	}
	log.Println("[PreferencesService] Preferences saved")
	return true
}

// Reset forgets the saved configuration and reports whether it succeeded.
func (ps *PreferencesService) Reset() bool {
	if err := ps.store.RemoveItem(config.GEOLOCATION_PREFERENCES_KEY); err != nil {
		log.Printf("[PreferencesService] Failed to reset preferences: %v", err)
		return false
	}
	return true
}
