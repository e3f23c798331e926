package geocode

import (
	"context"
	"log"

	"route-preview-service/internal/domain"
	"route-preview-service/internal/ports"
)

// CachedGeocoder consults a GeocodeCache before delegating to the inner
// geocoder. Cache faults never fail a lookup; they are logged and the
// lookup proceeds against the provider. The decorator is opt-in wiring at
// the composition root; the default composition keeps lookups cache-free.
type CachedGeocoder struct {
	Inner ports.Geocoder
	Cache ports.GeocodeCache
}

func (g *CachedGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinate, error) {
	if c, ok, err := g.Cache.Get(ctx, address); err != nil {
		log.Printf("geocode cache read failed: %v", err)
	} else if ok {
		return c, nil
	}

	c, err := g.Inner.Geocode(ctx, address)
	if err != nil {
		return domain.Coordinate{}, err
	}

	if err := g.Cache.Put(ctx, address, c); err != nil {
		log.Printf("geocode cache write failed: %v", err)
	}

	return c, nil
}
