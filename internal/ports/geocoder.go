package ports

import (
	"context"

	"route-preview-service/internal/domain"
)

// Geocoder resolves a free-text address into a coordinate.
//
// Implementations issue exactly one outbound call per invocation: no
// retries and no internal caching. Zero provider results surface as
// *domain.NotFoundError; network, protocol and decode faults surface as
// *domain.ServiceError.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinate, error)
}

// ReverseGeocoder resolves a coordinate back into a display address.
// Used only to prefill the start field from the device location.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, c domain.Coordinate) (string, error)
}
