package ipgeo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinemap/api"
)

func TestLocate(t *testing.T) {
	wantResp := IPLocationResponse{
		Status: STATUS_SUCCESS,
		City:   "Paris",
		Lat:    48.8566,
		Lon:    2.3522,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/json/" {
			t.Errorf("expected path /json/; got %s", r.URL.Path)
		}
		if r.URL.Query().Get("fields") == "" {
			t.Errorf("expected a fields selector")
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(wantResp)
	}))
	defer srv.Close()

	client := NewIPGeoApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, wantResp, *got)
}

func TestLocate_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewIPGeoApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.Locate(context.Background())
	assert.Nil(t, got)
	assert.Error(t, err)
}

func TestIPGeoApiClientMock_RepeatsLastResponse(t *testing.T) {
	first := &IPLocationResponse{Status: STATUS_SUCCESS, Lat: 1, Lon: 1}
	second := &IPLocationResponse{Status: STATUS_SUCCESS, Lat: 2, Lon: 2}
	mock := NewIPGeoApiClientMock(first, second)

	for _, want := range []float64{1, 2, 2} {
		got, err := mock.Locate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got.Lat)
	}
	assert.Equal(t, 3, mock.Calls())
}
