package models

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"cinemap/config"
)

// FilterConfig is the user's search configuration. It is what the
// preference store persists under the geolocation preferences key.
// Zero values disable a criterion.
type FilterConfig struct {
	RadiusKm          float64  `json:"radius_km"`
	MaxPrice          float64  `json:"max_price"`
	OnlyOpen          bool     `json:"only_open"`
	RequireParking    bool     `json:"has_parking"`
	RequireAccessible bool     `json:"accessible"`
	ArtEtEssai        bool     `json:"art_et_essai"`
	Services          []string `json:"services"`
}

// Query argument names, shared by ToValues and FilterConfigFromValues.
const (
	RADIUS_QUERY_ARG       = "radius"
	MAX_PRICE_QUERY_ARG    = "max_price"
	ONLY_OPEN_QUERY_ARG    = "only_open"
	PARKING_QUERY_ARG      = "parking"
	ACCESSIBLE_QUERY_ARG   = "accessible"
	ART_ET_ESSAI_QUERY_ARG = "art_et_essai"
	SERVICES_QUERY_ARG     = "services"
)

// DefaultFilterConfig is used when nothing has been saved yet.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		RadiusKm: config.DEFAULT_SEARCH_RADIUS_KM,
		MaxPrice: config.DEFAULT_MAX_PRICE,
		Services: []string{},
	}
}

// ErrNotFinite is wrapped by QueryArgError for NaN and infinite numbers.
var ErrNotFinite = errors.New("value must be a finite number")

// Normalize clamps the radius into the allowed range and drops negative or
// non-finite prices and empty service tags.
func (f FilterConfig) Normalize() FilterConfig {
	f.RadiusKm = ClampRadius(f.RadiusKm)
	if f.MaxPrice < 0 || !isFinite(f.MaxPrice) {
		f.MaxPrice = 0
	}
	services := make([]string, 0, len(f.Services))
	for _, s := range f.Services {
		if s = strings.TrimSpace(s); s != "" {
			services = append(services, s)
		}
	}
	f.Services = services
	return f
}

// ClampRadius forces r into [MIN_SEARCH_RADIUS_KM, MAX_SEARCH_RADIUS_KM].
// A non-positive or NaN radius means "use the default".
func ClampRadius(r float64) float64 {
	switch {
	case r <= 0 || math.IsNaN(r):
		return config.DEFAULT_SEARCH_RADIUS_KM
	case r < config.MIN_SEARCH_RADIUS_KM:
		return config.MIN_SEARCH_RADIUS_KM
	case r > config.MAX_SEARCH_RADIUS_KM:
		return config.MAX_SEARCH_RADIUS_KM
	}
	return r
}

// ToValues renders the configuration as query arguments. Disabled criteria
// are omitted.
func (f FilterConfig) ToValues() url.Values {
	q := url.Values{}

	if f.RadiusKm > 0 {
		q.Set(RADIUS_QUERY_ARG, ftoa(f.RadiusKm))
	}
	if f.MaxPrice > 0 {
		q.Set(MAX_PRICE_QUERY_ARG, ftoa(f.MaxPrice))
	}
	if f.OnlyOpen {
		q.Set(ONLY_OPEN_QUERY_ARG, "true")
	}
	if f.RequireParking {
		q.Set(PARKING_QUERY_ARG, "true")
	}
	if f.RequireAccessible {
		q.Set(ACCESSIBLE_QUERY_ARG, "true")
	}
	if f.ArtEtEssai {
		q.Set(ART_ET_ESSAI_QUERY_ARG, "true")
	}
	if len(f.Services) > 0 {
		q.Set(SERVICES_QUERY_ARG, strings.Join(f.Services, ","))
	}
	return q
}

// FilterConfigFromValues overlays the query arguments present in vals on
// base. Arguments that are absent keep base's value.
func FilterConfigFromValues(vals url.Values, base FilterConfig) (FilterConfig, error) {
	f := base
	var err error

	if s := vals.Get(RADIUS_QUERY_ARG); s != "" {
		if f.RadiusKm, err = ParseFiniteFloat(RADIUS_QUERY_ARG, s); err != nil {
			return base, err
		}
	}
	if s := vals.Get(MAX_PRICE_QUERY_ARG); s != "" {
		if f.MaxPrice, err = ParseFiniteFloat(MAX_PRICE_QUERY_ARG, s); err != nil {
			return base, err
		}
	}
	flags := []struct {
		arg  string
		dest *bool
	}{
		{ONLY_OPEN_QUERY_ARG, &f.OnlyOpen},
		{PARKING_QUERY_ARG, &f.RequireParking},
		{ACCESSIBLE_QUERY_ARG, &f.RequireAccessible},
		{ART_ET_ESSAI_QUERY_ARG, &f.ArtEtEssai},
	}
	for _, flag := range flags {
		if s := vals.Get(flag.arg); s != "" {
			if *flag.dest, err = strconv.ParseBool(s); err != nil {
				return base, &QueryArgError{Arg: flag.arg, Err: err}
			}
		}
	}
	if _, ok := vals[SERVICES_QUERY_ARG]; ok {
		f.Services = strings.Split(vals.Get(SERVICES_QUERY_ARG), ",")
	}
	return f.Normalize(), nil
}

// QueryArgError reports a query argument that could not be parsed.
type QueryArgError struct {
	Arg string
	Err error
}

func (e *QueryArgError) Error() string {
	return "invalid argument " + e.Arg + ": " + e.Err.Error()
}

func (e *QueryArgError) Unwrap() error { return e.Err }

// ParseFiniteFloat parses the value of query argument arg, rejecting NaN
// and infinities.
func ParseFiniteFloat(arg, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &QueryArgError{Arg: arg, Err: err}
	}
	if !isFinite(v) {
		return 0, &QueryArgError{Arg: arg, Err: ErrNotFinite}
	}
	return v, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
