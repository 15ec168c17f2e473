package service

import (
	"context"

	"chaintrace/internal/domain/entity"
)

// Geocoder turns device coordinates into a human-readable address. It is best-effort:
// callers fall back to the raw coordinates on error.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, coords entity.Coordinates) (string, error)
}
