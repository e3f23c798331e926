package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"route-preview-service/internal/api/dto"
	"route-preview-service/internal/domain"
	"route-preview-service/internal/ports"
	"route-preview-service/internal/services"
)

// SessionHandler drives the shared presentation session: endpoint text
// edits, the search state machine, and the current-location bootstrap.
type SessionHandler struct {
	Session  *services.Session
	Geocoder ports.Geocoder
	Reverse  ports.ReverseGeocoder
}

// Get returns a snapshot of the session for rendering.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, toSessionResponse(h.Session.Snapshot()))
}

// SetInputs replaces both endpoint texts.
func (h *SessionHandler) SetInputs(w http.ResponseWriter, r *http.Request) {
	var req dto.InputsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.Session.SetInputs(req.Start, req.End)
	writeJSON(w, r, http.StatusOK, toSessionResponse(h.Session.Snapshot()))
}

// Swap exchanges the start and end texts without resolving.
func (h *SessionHandler) Swap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	h.Session.Swap()
	writeJSON(w, r, http.StatusOK, toSessionResponse(h.Session.Snapshot()))
}

// Clear resets both inputs and returns the session to idle.
func (h *SessionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	h.Session.Clear()
	writeJSON(w, r, http.StatusOK, toSessionResponse(h.Session.Snapshot()))
}

// Search starts a resolution against the current inputs. The lookup runs in
// the background; callers poll the snapshot endpoint for the outcome. A
// search started while one is outstanding is rejected, and a result from an
// abandoned search is dropped by the session's generation guard.
func (h *SessionHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	gen, start, end, err := h.Session.Begin()
	if err != nil {
		writeError(w, r, http.StatusConflict, err.Error())
		return
	}

	// Detached from the request context: the response returns before the
	// lookups settle.
	go func() {
		route, err := services.ResolveRoute(context.Background(), h.Geocoder, start, end)
		if err != nil {
			h.Session.Fail(gen, err.Error())
			return
		}
		h.Session.Complete(gen, route)
	}()

	writeJSON(w, r, http.StatusAccepted, toSessionResponse(h.Session.Snapshot()))
}

// Bootstrap reverse-geocodes a device coordinate and prefills the start
// field with the resulting address.
func (h *SessionHandler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	if h.Reverse == nil {
		writeError(w, r, http.StatusNotImplemented, "reverse geocoding is not configured")
		return
	}

	var req dto.BootstrapRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c := domain.Coordinate{Lat: req.Lat, Lon: req.Lon}
	if !c.Valid() {
		writeError(w, r, http.StatusBadRequest, "lat/lon out of range")
		return
	}

	addr, err := h.Reverse.ReverseGeocode(r.Context(), c)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, r, http.StatusBadGateway, err.Error())
		return
	}

	h.Session.SetStart(addr)
	writeJSON(w, r, http.StatusOK, dto.BootstrapResponse{Start: addr})
}

// decodeBody enforces the single-JSON-object POST convention shared by the
// session endpoints.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}

	return true
}

func toSessionResponse(s services.Snapshot) dto.SessionResponse {
	return dto.SessionResponse{
		Phase:      string(s.Phase),
		Start:      s.StartText,
		End:        s.EndText,
		Route:      toRouteResponse(s.Route),
		FailReason: s.FailReason,
	}
}
