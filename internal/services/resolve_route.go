package services

import (
	"context"

	"route-preview-service/internal/domain"
	"route-preview-service/internal/ports"
)

// geocodeOutcome is one endpoint's settled lookup result.
type geocodeOutcome struct {
	input domain.EndpointInput
	coord domain.Coordinate
	err   error
}

// ResolveRoute validates both endpoints, geocodes them concurrently and,
// on dual success, derives the straight-line route geometry.
//
// Both lookups are fired together and both are joined before any decision
// is made, so a failure on one endpoint never hides the other's outcome and
// overall latency is roughly max(start, end) rather than their sum. Either
// lookup failing fails the whole resolution with a GeocodeFailure tagging
// exactly the endpoint(s) that failed; no partial route is ever produced.
//
// Beyond the two network calls the function is side-effect free: repeated
// calls with identical inputs perform two independent full lookups.
func ResolveRoute(
	ctx context.Context,
	geocoder ports.Geocoder,
	start domain.EndpointInput,
	end domain.EndpointInput,
) (*domain.RouteResult, error) {
	var empty []string
	if start.Empty() {
		empty = append(empty, start.Label)
	}
	if end.Empty() {
		empty = append(empty, end.Label)
	}
	if len(empty) > 0 {
		return nil, &domain.ValidationError{Fields: empty}
	}

	outcomes := make(chan geocodeOutcome, 2)
	for _, input := range []domain.EndpointInput{start, end} {
		go func(in domain.EndpointInput) {
			coord, err := geocoder.Geocode(ctx, in.Normalize())
			outcomes <- geocodeOutcome{input: in, coord: coord, err: err}
		}(input)
	}

	settled := make(map[string]geocodeOutcome, 2)
	for i := 0; i < 2; i++ {
		o := <-outcomes
		settled[o.input.Label] = o
	}

	var failed []domain.EndpointFailure
	for _, label := range []string{start.Label, end.Label} {
		if o := settled[label]; o.err != nil {
			failed = append(failed, domain.EndpointFailure{Label: label, Err: o.err})
		}
	}
	if len(failed) > 0 {
		return nil, &domain.GeocodeFailure{Endpoints: failed}
	}

	a := settled[start.Label].coord
	b := settled[end.Label].coord

	meters := domain.Distance(a, b)
	return &domain.RouteResult{
		Start:          a,
		End:            b,
		DistanceMeters: meters,
		EtaMinutes:     domain.EstimateEtaMinutes(meters),
		Viewport:       domain.NewBoundingBox(a, b),
	}, nil
}
