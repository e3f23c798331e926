package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates the geocoding provider returned zero results.
// Concrete failures wrap it so callers can errors.Is across the taxonomy.
var ErrNotFound = errors.New("address not found")

// ValidationError reports which endpoint fields were empty after trimming.
// It is returned before any network call is made.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: empty field(s): %s", strings.Join(e.Fields, ", "))
}

// NotFoundError means the provider had no result for a specific address.
// Recoverable: the user corrects the address and searches again.
type NotFoundError struct {
	Address string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no geocode results for %q", e.Address)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ServiceError is a network, protocol or decode fault from the geocoding
// provider. Surfaced immediately; retry is a user-initiated re-search.
type ServiceError struct {
	Cause error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("geocoding service: %v", e.Cause)
}

func (e *ServiceError) Unwrap() error { return e.Cause }

// EndpointFailure ties a lookup failure to the endpoint that caused it.
type EndpointFailure struct {
	Label string
	Err   error
}

// GeocodeFailure aggregates the failed endpoint lookups of one resolution.
// Partial success is still a full failure; no partial route is produced.
type GeocodeFailure struct {
	Endpoints []EndpointFailure
}

func (e *GeocodeFailure) Error() string {
	parts := make([]string, 0, len(e.Endpoints))
	for _, ep := range e.Endpoints {
		parts = append(parts, fmt.Sprintf("%s: %v", ep.Label, ep.Err))
	}
	return "geocode failure: " + strings.Join(parts, "; ")
}

// Unwrap exposes the per-endpoint causes to errors.Is and errors.As.
func (e *GeocodeFailure) Unwrap() []error {
	causes := make([]error, 0, len(e.Endpoints))
	for _, ep := range e.Endpoints {
		causes = append(causes, ep.Err)
	}
	return causes
}
