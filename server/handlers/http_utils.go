package handlers

import (
	"bytes"
	"cinemap/geolocation"
	"cinemap/models"
	services "cinemap/service"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
)

const (
	LAT_QUERY_ARG   = "lat"
	LON_QUERY_ARG   = "lon"
	LIMIT_QUERY_ARG = "limit"
)

// writeJSON encodes body before touching w, so an unencodable body is
// reported as a 500 instead of a truncated success.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Println("Error writing response:", err)
	}
}

// statusFor maps service and geolocation errors to HTTP status codes.
func statusFor(err error) int {
	var argErr *models.QueryArgError
	switch {
	case errors.As(err, &argErr),
		errors.Is(err, services.ErrPositionRequired),
		errors.Is(err, services.ErrInvalidPosition):
		return http.StatusBadRequest
	case errors.Is(err, geolocation.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, services.ErrVenueNotFound):
		return http.StatusNotFound
	case errors.Is(err, geolocation.ErrPositionUnavailable),
		errors.Is(err, geolocation.ErrUnsupported):
		return http.StatusServiceUnavailable
	case errors.Is(err, geolocation.ErrTimeout):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Println("Internal error:", err)
		http.Error(w, "Internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

// parsePosition reads lat and lon. Both absent means no position; only one
// of them is an error.
func parsePosition(vals url.Values) (*models.Position, error) {
	latStr, lonStr := vals.Get(LAT_QUERY_ARG), vals.Get(LON_QUERY_ARG)
	if latStr == "" && lonStr == "" {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, &models.QueryArgError{Arg: LAT_QUERY_ARG, Err: err}
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, &models.QueryArgError{Arg: LON_QUERY_ARG, Err: err}
	}
	return &models.Position{Latitude: lat, Longitude: lon}, nil
}

func parseOptionalInt(vals url.Values, name string) (int, error) {
	s := vals.Get(name)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &models.QueryArgError{Arg: name, Err: err}
	}
	return n, nil
}
