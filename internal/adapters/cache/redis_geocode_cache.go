package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"route-preview-service/internal/domain"
)

// RedisGeocodeCache stores address -> coordinate mappings as JSON values
// under a key prefix, with an optional TTL (zero means no expiry).
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

type cachedCoordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

func redisKey(address string) string { return "geocode:" + address }

// Get fetches the cached coordinate for one address.
func (r *RedisGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinate, bool, error) {
	if r.Client == nil {
		return domain.Coordinate{}, false, errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinate{}, false, errors.New("get geocode cache: address must not be empty")
	}

	raw, err := r.Client.Get(ctx, redisKey(address)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinate{}, false, nil
	}
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	var c cachedCoordinate
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache: decode value: %w", err)
	}

	return domain.Coordinate{Lon: c.Lon, Lat: c.Lat}, true, nil
}

// Put stores one address -> coordinate mapping, replacing a prior entry.
func (r *RedisGeocodeCache) Put(ctx context.Context, address string, c domain.Coordinate) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: address must not be empty")
	}

	raw, err := json.Marshal(cachedCoordinate{Lon: c.Lon, Lat: c.Lat})
	if err != nil {
		return fmt.Errorf("insert geocode cache: encode value: %w", err)
	}

	if err := r.Client.Set(ctx, redisKey(address), raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert geocode cache address=%q: %w", address, err)
	}

	return nil
}
