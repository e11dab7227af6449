package api

import (
	"net/http"

	"traffic-route-service/internal/api/handlers"
	"traffic-route-service/internal/platform/metrics"
	"traffic-route-service/internal/ports"
	"traffic-route-service/internal/traffic"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	provider ports.DirectionsProvider,
	store *traffic.Store,
	adjuster *traffic.Aggregator,
	collector *metrics.Collector,
) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Provider: provider,
		Adjuster: adjuster,
		Metrics:  collector,
	}
	streetHandler := &handlers.StreetHandler{Store: store}
	healthHandler := &handlers.HealthHandler{Store: store}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/routes", routeHandler.GetRoutes)
	mux.HandleFunc("/street_traffic", streetHandler.StreetTraffic)
	if collector != nil {
		mux.Handle("/metrics", collector.Handler())
	}

	return loggingMiddleware(mux)
}
