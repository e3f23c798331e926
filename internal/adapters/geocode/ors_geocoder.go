package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"route-preview-service/internal/domain"
	"route-preview-service/internal/platform/obs"
)

// ORSGeocoder resolves addresses using the OpenRouteService geocoding API.
//
// Each call issues exactly one outbound request; there is no retrying and
// no caching at this layer. The type is safe for concurrent use.
type ORSGeocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewORSGeocoder(apiKey string) (*ORSGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
	}, nil
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// Geocode resolves one address via /geocode/search.
func (o *ORSGeocoder) Geocode(ctx context.Context, address string) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	req, err := o.newRequest(ctx, http.MethodGet, o.baseURL+"/geocode/search", nil)
	if err != nil {
		return domain.Coordinate{}, &domain.ServiceError{Cause: err}
	}

	q := req.URL.Query()
	q.Set("text", address)
	q.Set("size", "1")
	req.URL.RawQuery = q.Encode()

	decoded, err := o.fetchFeatures(req)
	if err != nil {
		return domain.Coordinate{}, err
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinate{}, &domain.NotFoundError{Address: address}
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinate{}, &domain.ServiceError{
			Cause: fmt.Errorf("invalid coordinate format for %q", address),
		}
	}

	c := domain.Coordinate{Lon: coords[0], Lat: coords[1]}
	if !c.Valid() {
		return domain.Coordinate{}, &domain.ServiceError{
			Cause: fmt.Errorf("coordinate out of range for %q", address),
		}
	}

	return c, nil
}

// ReverseGeocode resolves a coordinate into a display label via
// /geocode/reverse. Used to prefill the start field from the device
// location.
func (o *ORSGeocoder) ReverseGeocode(ctx context.Context, c domain.Coordinate) (_ string, err error) {
	defer obs.Time(ctx, "ors.ReverseGeocode")(&err)

	if !c.Valid() {
		return "", &domain.ServiceError{
			Cause: fmt.Errorf("coordinate out of range: lat=%v lon=%v", c.Lat, c.Lon),
		}
	}

	req, err := o.newRequest(ctx, http.MethodGet, o.baseURL+"/geocode/reverse", nil)
	if err != nil {
		return "", &domain.ServiceError{Cause: err}
	}

	q := req.URL.Query()
	q.Set("point.lat", strconv.FormatFloat(c.Lat, 'f', -1, 64))
	q.Set("point.lon", strconv.FormatFloat(c.Lon, 'f', -1, 64))
	q.Set("size", "1")
	req.URL.RawQuery = q.Encode()

	decoded, err := o.fetchFeatures(req)
	if err != nil {
		return "", err
	}

	if len(decoded.Features) == 0 {
		return "", &domain.NotFoundError{
			Address: fmt.Sprintf("%.5f,%.5f", c.Lat, c.Lon),
		}
	}

	return decoded.Features[0].Properties.Label, nil
}

func (o *ORSGeocoder) fetchFeatures(req *http.Request) (*geocodeResponse, error) {
	resp, err := o.do(req)
	if err != nil {
		return nil, &domain.ServiceError{Cause: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &domain.ServiceError{Cause: fmt.Errorf("decode geocode response: %w", err)}
	}

	return &decoded, nil
}
