// Package geocode resolves tracking coordinates into street addresses.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"chaintrace/config"
	deliverycontext "chaintrace/internal/delivery/context"
	"chaintrace/internal/domain/entity"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"

	"github.com/cenkalti/backoff/v4"
)

// ErrGeocodingDisabled is returned by the disabled geocoder; callers fall back to coordinates.
var ErrGeocodingDisabled = errors.New("geocoding disabled")

// ErrNoAddress means the provider had nothing at the given point.
var ErrNoAddress = errors.New("no address for coordinates")

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

type nominatimGeocoder struct {
	baseURL         string
	userAgent       string
	client          *http.Client
	maxElapsed      time.Duration
	initialInterval time.Duration
	logger          *slog.Logger
}

// NewGeocoder returns a Nominatim-backed geocoder, or one that always fails with
// ErrGeocodingDisabled when geocoding.enabled is false.
func NewGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	gc := cfg.Geocoding
	if gc == nil || !gc.Enabled {
		return disabledGeocoder{}
	}

	return &nominatimGeocoder{
		baseURL:         strings.TrimRight(gc.BaseURL, "/"),
		userAgent:       gc.UserAgent,
		client:          &http.Client{Timeout: gc.Timeout},
		maxElapsed:      gc.MaxElapsed,
		initialInterval: 500 * time.Millisecond,
		logger:          logger,
	}
}

// ReverseGeocode looks up the display name for coords. Rate limiting and 5xx
// responses are retried with exponential backoff until maxElapsed.
func (g *nominatimGeocoder) ReverseGeocode(ctx context.Context, coords entity.Coordinates) (string, error) {
	if !coords.Valid() {
		return "", entity.ErrInvalidLocation
	}

	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', 6, 64))
	query.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', 6, 64))
	endpoint := g.baseURL + "/reverse?" + query.Encode()

	var address string
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(errors.WithStack(err))
		}
		req.Header.Set("User-Agent", g.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			return errors.Wrap(err, "reverse geocode request")
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return errors.Errorf("geocoder returned %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

			return backoff.Permanent(errors.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body)))
		}

		var decoded nominatimResponse
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return backoff.Permanent(errors.Wrap(err, "decode geocoder response"))
		}
		if decoded.Error != "" || decoded.DisplayName == "" {
			return backoff.Permanent(ErrNoAddress)
		}
		address = decoded.DisplayName

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.initialInterval
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = g.maxElapsed

	var attempts int
	notify := func(err error, next time.Duration) {
		attempts++
		deliverycontext.GetLoggerOrDefault(ctx, g.logger).Warn("Reverse geocode failed, retrying",
			slog.String("error", err.Error()),
			slog.Int("attempt", attempts),
			slog.Duration("next_retry_in", next),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		return "", errors.Wrap(err, fmt.Sprintf("reverse geocode %s", coords))
	}

	return address, nil
}

type disabledGeocoder struct{}

func (disabledGeocoder) ReverseGeocode(context.Context, entity.Coordinates) (string, error) {
	return "", ErrGeocodingDisabled
}
