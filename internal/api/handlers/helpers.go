package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"route-preview-service/internal/api/dto"
	"route-preview-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// resolutionStatus maps a resolution failure to an HTTP status and a short
// user-facing message naming the failing field(s). A provider fault on any
// endpoint outranks an address miss.
func resolutionStatus(err error) (int, string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Error()
	}

	var gf *domain.GeocodeFailure
	if errors.As(err, &gf) {
		var se *domain.ServiceError
		if errors.As(err, &se) {
			return http.StatusBadGateway, gf.Error()
		}
		return http.StatusUnprocessableEntity, gf.Error()
	}

	return http.StatusInternalServerError, "internal server error"
}

func toCoordinateResponse(c domain.Coordinate) dto.CoordinateResponse {
	return dto.CoordinateResponse{Lat: c.Lat, Lon: c.Lon}
}

func toRouteResponse(route *domain.RouteResult) *dto.RouteResponse {
	if route == nil {
		return nil
	}
	return &dto.RouteResponse{
		Start:          toCoordinateResponse(route.Start),
		End:            toCoordinateResponse(route.End),
		DistanceMeters: route.DistanceMeters,
		EtaMinutes:     route.EtaMinutes,
		Viewport: dto.ViewportResponse{
			Southwest: toCoordinateResponse(route.Viewport.Southwest),
			Northeast: toCoordinateResponse(route.Viewport.Northeast),
		},
	}
}
