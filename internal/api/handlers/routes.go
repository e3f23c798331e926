package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"route-preview-service/internal/api/dto"
	"route-preview-service/internal/domain"
	"route-preview-service/internal/ports"
	"route-preview-service/internal/services"
)

// RouteHandler resolves two endpoint addresses into a route preview.
type RouteHandler struct {
	Geocoder ports.Geocoder
}

// Resolve runs the full pipeline for one request: validation, concurrent
// geocoding of both endpoints, and geometry derivation.
func (h *RouteHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	start := domain.EndpointInput{Label: domain.LabelStart, RawText: req.Start}
	end := domain.EndpointInput{Label: domain.LabelEnd, RawText: req.End}

	route, err := services.ResolveRoute(r.Context(), h.Geocoder, start, end)
	if err != nil {
		status, msg := resolutionStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("resolve route failed: %v", err)
		}
		writeError(w, r, status, msg)
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(route))
}
