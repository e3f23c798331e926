package geocode

import (
	"context"
	"errors"
	"testing"

	"route-preview-service/internal/domain"
)

type mapCache struct {
	m      map[string]domain.Coordinate
	getErr error
	putErr error
}

func newMapCache() *mapCache {
	return &mapCache{m: make(map[string]domain.Coordinate)}
}

func (c *mapCache) Get(ctx context.Context, address string) (domain.Coordinate, bool, error) {
	if c.getErr != nil {
		return domain.Coordinate{}, false, c.getErr
	}
	coord, ok := c.m[address]
	return coord, ok, nil
}

func (c *mapCache) Put(ctx context.Context, address string, coord domain.Coordinate) error {
	if c.putErr != nil {
		return c.putErr
	}
	c.m[address] = coord
	return nil
}

func TestCachedGeocoderMissThenHit(t *testing.T) {
	pune := domain.Coordinate{Lat: 18.5204, Lon: 73.8567}
	inner := NewMockGeocoder([]MockEntry{{Address: "Pune, India", Coord: pune}})
	g := &CachedGeocoder{Inner: inner, Cache: newMapCache()}

	for i := 0; i < 2; i++ {
		c, err := g.Geocode(context.Background(), "Pune, India")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c != pune {
			t.Fatalf("coordinate = %+v, want %+v", c, pune)
		}
	}

	// Second lookup is served from the cache.
	if inner.Calls() != 1 {
		t.Fatalf("inner lookups = %d, want 1", inner.Calls())
	}
}

func TestCachedGeocoderCacheFaultFallsThrough(t *testing.T) {
	pune := domain.Coordinate{Lat: 18.5204, Lon: 73.8567}
	inner := NewMockGeocoder([]MockEntry{{Address: "Pune, India", Coord: pune}})
	store := newMapCache()
	store.getErr = errors.New("cache offline")
	store.putErr = errors.New("cache offline")
	g := &CachedGeocoder{Inner: inner, Cache: store}

	c, err := g.Geocode(context.Background(), "Pune, India")
	if err != nil {
		t.Fatalf("cache fault must not fail the lookup: %v", err)
	}
	if c != pune {
		t.Fatalf("coordinate = %+v, want %+v", c, pune)
	}
}

func TestCachedGeocoderDoesNotCacheFailures(t *testing.T) {
	inner := NewMockGeocoder(nil)
	store := newMapCache()
	g := &CachedGeocoder{Inner: inner, Cache: store}

	if _, err := g.Geocode(context.Background(), "Nowhere At All"); err == nil {
		t.Fatal("expected a lookup failure")
	}
	if len(store.m) != 0 {
		t.Fatalf("failure was cached: %+v", store.m)
	}
}
