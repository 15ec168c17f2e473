package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"chaintrace/config"
	"chaintrace/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(baseURL string) *nominatimGeocoder {
	return &nominatimGeocoder{
		baseURL:         baseURL,
		userAgent:       "chaintrace-test",
		client:          &http.Client{Timeout: time.Second},
		maxElapsed:      2 * time.Second,
		initialInterval: 10 * time.Millisecond,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNominatimGeocoder_ReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "25.033000", r.URL.Query().Get("lat"))
		assert.Equal(t, "121.565400", r.URL.Query().Get("lon"))
		assert.Equal(t, "chaintrace-test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"display_name":"Taipei 101, Xinyi District, Taipei"}`))
	}))
	defer server.Close()

	address, err := newTestGeocoder(server.URL).ReverseGeocode(context.Background(), entity.Coordinates{Latitude: 25.033, Longitude: 121.5654})
	require.NoError(t, err)
	assert.Equal(t, "Taipei 101, Xinyi District, Taipei", address)
}

func TestNominatimGeocoder_RetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)

			return
		}
		_, _ = w.Write([]byte(`{"display_name":"Somewhere"}`))
	}))
	defer server.Close()

	address, err := newTestGeocoder(server.URL).ReverseGeocode(context.Background(), entity.Coordinates{Latitude: 1, Longitude: 1})
	require.NoError(t, err)
	assert.Equal(t, "Somewhere", address)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNominatimGeocoder_NoAddressIsPermanent(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer server.Close()

	_, err := newTestGeocoder(server.URL).ReverseGeocode(context.Background(), entity.Coordinates{Latitude: 0, Longitude: -160})
	assert.ErrorIs(t, err, ErrNoAddress)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNominatimGeocoder_InvalidCoordinates(t *testing.T) {
	_, err := newTestGeocoder("http://unused").ReverseGeocode(context.Background(), entity.Coordinates{Latitude: 91})
	assert.ErrorIs(t, err, entity.ErrInvalidLocation)
}

func TestNewGeocoder_Disabled(t *testing.T) {
	g := NewGeocoder(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := g.ReverseGeocode(context.Background(), entity.Coordinates{Latitude: 1, Longitude: 1})
	assert.ErrorIs(t, err, ErrGeocodingDisabled)
}
