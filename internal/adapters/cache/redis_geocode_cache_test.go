package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"route-preview-service/internal/domain"
)

func newTestRedisCache(t *testing.T) *RedisGeocodeCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisGeocodeCache(client, 0)
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "Pune, India"); err != nil || ok {
		t.Fatalf("expected a clean miss, got ok=%v err=%v", ok, err)
	}

	pune := domain.Coordinate{Lat: 18.5204, Lon: 73.8567}
	if err := c.Put(ctx, "Pune, India", pune); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "Pune, India")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	if got != pune {
		t.Fatalf("coordinate = %+v, want %+v", got, pune)
	}
}

func TestRedisGeocodeCacheReplacesEntry(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "Pune, India", domain.Coordinate{Lat: 1, Lon: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pune := domain.Coordinate{Lat: 18.5204, Lon: 73.8567}
	if err := c.Put(ctx, "Pune, India", pune); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "Pune, India")
	if err != nil || !ok {
		t.Fatalf("expected a hit, got ok=%v err=%v", ok, err)
	}
	if got != pune {
		t.Fatalf("coordinate = %+v, want %+v", got, pune)
	}
}

func TestRedisGeocodeCacheRejectsEmptyAddress(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	if _, _, err := c.Get(ctx, "   "); err == nil {
		t.Fatal("expected error for empty address")
	}
	if err := c.Put(ctx, "", domain.Coordinate{}); err == nil {
		t.Fatal("expected error for empty address")
	}
}
