package geocode

import (
	"context"
	"sync/atomic"

	"route-preview-service/internal/domain"
)

type MockEntry struct {
	Address string
	Coord   domain.Coordinate
	Err     error
}

// MockGeocoder serves lookups from a fixed table and counts issued calls,
// so tests can assert that validation failures make zero network calls.
type MockGeocoder struct {
	m     map[string]MockEntry
	calls atomic.Int64
}

func NewMockGeocoder(entries []MockEntry) *MockGeocoder {
	m := make(map[string]MockEntry, len(entries))
	for _, e := range entries {
		m[e.Address] = e
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinate, error) {
	g.calls.Add(1)

	e, ok := g.m[address]
	if !ok {
		return domain.Coordinate{}, &domain.NotFoundError{Address: address}
	}
	if e.Err != nil {
		return domain.Coordinate{}, e.Err
	}

	return e.Coord, nil
}

// Calls reports how many lookups were issued.
func (g *MockGeocoder) Calls() int { return int(g.calls.Load()) }
