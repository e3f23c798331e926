package api

import (
	"net/http"

	"route-preview-service/internal/api/handlers"
	"route-preview-service/internal/ports"
	"route-preview-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters). reverse may be nil when no reverse geocoder is
// configured.
func NewRouter(geocoder ports.Geocoder, reverse ports.ReverseGeocoder, session *services.Session) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Geocoder: geocoder}
	sessionHandler := &handlers.SessionHandler{
		Session:  session,
		Geocoder: geocoder,
		Reverse:  reverse,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routeHandler.Resolve)
	mux.HandleFunc("/session", sessionHandler.Get)
	mux.HandleFunc("/session/inputs", sessionHandler.SetInputs)
	mux.HandleFunc("/session/swap", sessionHandler.Swap)
	mux.HandleFunc("/session/clear", sessionHandler.Clear)
	mux.HandleFunc("/session/search", sessionHandler.Search)
	mux.HandleFunc("/session/bootstrap", sessionHandler.Bootstrap)

	return loggingMiddleware(mux)
}
