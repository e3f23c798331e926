package ports

import (
	"context"

	"route-preview-service/internal/domain"
)

// GeocodeCache is a boundary for persisted address -> coordinate mappings.
// It backs an opt-in decorator around a Geocoder; the geocoders themselves
// never cache.
type GeocodeCache interface {
	// Get returns the cached coordinate for address, reporting a miss via
	// the second return value.
	Get(ctx context.Context, address string) (domain.Coordinate, bool, error)
	// Put stores the coordinate for address, replacing any prior entry.
	Put(ctx context.Context, address string, c domain.Coordinate) error
}
