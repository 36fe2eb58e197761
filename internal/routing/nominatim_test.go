package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimGeocode(t *testing.T) {
	var gotUserAgent, gotQuery, gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query().Get("q")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"28.6315","lon":"77.2167","display_name":"Connaught Place, New Delhi, India"}]`))
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(server.URL, "greenroute-test/1.0", 5*time.Second, nil)

	place, err := geocoder.Geocode(context.Background(), "Connaught Place, Delhi")
	require.NoError(t, err)

	assert.Equal(t, "greenroute-test/1.0", gotUserAgent)
	assert.Equal(t, "Connaught Place, Delhi", gotQuery)
	assert.Equal(t, "1", gotLimit)

	assert.InDelta(t, 28.6315, place.Latitude, 0.0001)
	assert.InDelta(t, 77.2167, place.Longitude, 0.0001)
	assert.Equal(t, "Connaught Place, New Delhi, India", place.DisplayName)
	assert.NotEmpty(t, place.H3Cell)
}

func TestNominatimGeocodeNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(server.URL, "greenroute-test/1.0", 5*time.Second, nil)

	_, err := geocoder.Geocode(context.Background(), "nowhere at all")
	assert.Error(t, err)
}

func TestNominatimGeocodeUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(server.URL, "greenroute-test/1.0", 5*time.Second, nil)

	_, err := geocoder.Geocode(context.Background(), "anywhere")
	assert.Error(t, err)
}

func TestNominatimGeocodeEmptyInput(t *testing.T) {
	geocoder := NewNominatimGeocoder("http://unused", "greenroute-test/1.0", 5*time.Second, nil)

	_, err := geocoder.Geocode(context.Background(), "   ")
	assert.Error(t, err)
}
