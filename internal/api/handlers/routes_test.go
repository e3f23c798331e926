package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"route-preview-service/internal/adapters/geocode"
	"route-preview-service/internal/api/dto"
	"route-preview-service/internal/domain"
)

var (
	puneCoord   = domain.Coordinate{Lat: 18.5204, Lon: 73.8567}
	mumbaiCoord = domain.Coordinate{Lat: 19.0760, Lon: 72.8777}
)

func cityGeocoder() *geocode.MockGeocoder {
	return geocode.NewMockGeocoder([]geocode.MockEntry{
		{Address: "Pune, India", Coord: puneCoord},
		{Address: "Mumbai, India", Coord: mumbaiCoord},
	})
}

func postRoutes(t *testing.T, h *RouteHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/routes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Resolve(rec, req)
	return rec
}

func TestRouteHandlerResolve(t *testing.T) {
	h := &RouteHandler{Geocoder: cityGeocoder()}

	rec := postRoutes(t, h, `{"start":"Pune, India","end":"Mumbai, India"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.RouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.DistanceMeters < 118_000 || res.DistanceMeters > 122_000 {
		t.Fatalf("distance = %.0f m, want ~120 km", res.DistanceMeters)
	}
	if res.EtaMinutes <= 0 {
		t.Fatalf("eta = %v, want > 0", res.EtaMinutes)
	}

	wantViewport := dto.ViewportResponse{
		Southwest: dto.CoordinateResponse{Lat: 18.5204, Lon: 72.8777},
		Northeast: dto.CoordinateResponse{Lat: 19.0760, Lon: 73.8567},
	}
	if diff := cmp.Diff(wantViewport, res.Viewport); diff != "" {
		t.Fatalf("viewport mismatch (-want +got):\n%s", diff)
	}
}

func TestRouteHandlerValidationNamesField(t *testing.T) {
	mock := cityGeocoder()
	h := &RouteHandler{Geocoder: mock}

	rec := postRoutes(t, h, `{"start":"","end":"Mumbai, India"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "start") {
		t.Fatalf("error does not name the empty field: %s", rec.Body.String())
	}
	if mock.Calls() != 0 {
		t.Fatalf("lookups issued = %d, want 0", mock.Calls())
	}
}

func TestRouteHandlerAddressNotFound(t *testing.T) {
	h := &RouteHandler{Geocoder: cityGeocoder()}

	rec := postRoutes(t, h, `{"start":"Pune, India","end":"Nowhere At All"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "end") {
		t.Fatalf("error does not name the failing endpoint: %s", rec.Body.String())
	}
}

func TestRouteHandlerProviderFault(t *testing.T) {
	mock := geocode.NewMockGeocoder([]geocode.MockEntry{
		{Address: "Pune, India", Coord: puneCoord},
		{Address: "Mumbai, India", Err: &domain.ServiceError{Cause: errTimeout}},
	})
	h := &RouteHandler{Geocoder: mock}

	rec := postRoutes(t, h, `{"start":"Pune, India","end":"Mumbai, India"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestRouteHandlerRejectsBadBodies(t *testing.T) {
	h := &RouteHandler{Geocoder: cityGeocoder()}

	cases := []struct {
		name string
		body string
	}{
		{"malformed", `{"start":`},
		{"unknown field", `{"start":"a","end":"b","via":"c"}`},
		{"trailing object", `{"start":"a","end":"b"}{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rec := postRoutes(t, h, tc.body); rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestRouteHandlerMethodNotAllowed(t *testing.T) {
	h := &RouteHandler{Geocoder: cityGeocoder()}

	req := httptest.NewRequest(http.MethodGet, "/routes", nil)
	rec := httptest.NewRecorder()
	h.Resolve(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
