package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"math"
	"net/http"
	"strings"

	"traffic-route-service/internal/adapters/directions"
	"traffic-route-service/internal/api/dto"
	"traffic-route-service/internal/domain"
	"traffic-route-service/internal/platform/metrics"
	"traffic-route-service/internal/ports"
	"traffic-route-service/internal/traffic"
)

type RouteHandler struct {
	Provider ports.DirectionsProvider
	Adjuster *traffic.Aggregator
	Metrics  *metrics.Collector
}

// GetRoutes fetches route alternatives from the directions provider and
// applies the locally computed traffic adjustment to each one. The
// provider's base estimate is surfaced unmodified alongside the adjusted
// duration, with its own traffic-aware figure included when present.
func (h *RouteHandler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RoutesRequest

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

	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	if origin == "" || destination == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	mode := strings.TrimSpace(req.Mode)
	if mode == "" {
		mode = "driving"
	}

	routes, err := h.Provider.GetRoutes(r.Context(), origin, destination, mode)
	if err != nil {
		var statusErr *directions.StatusError
		if errors.As(err, &statusErr) {
			writeError(w, r, http.StatusBadGateway, statusErr.Error())
			return
		}
		log.Printf("get routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.RoutesResponse{Routes: make([]dto.RouteResponse, 0, len(routes))}
	for _, route := range routes {
		adj, err := h.Adjuster.Adjust(route.Steps, req.IncludeTrafficDetails)
		if err != nil {
			log.Printf("adjust route failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}

		if h.Metrics != nil {
			h.Metrics.AdjustmentsComputed.Inc()
			if adj.StreetsMatched == 0 {
				h.Metrics.UnmatchedRoutes.Inc()
			}
		}

		res.Routes = append(res.Routes, buildRouteResponse(route, adj))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func buildRouteResponse(route domain.Route, adj domain.RouteAdjustment) dto.RouteResponse {
	steps := make([]dto.StepResponse, 0, len(route.Steps))
	for _, s := range route.Steps {
		steps = append(steps, dto.StepResponse{
			Instruction:     s.Instruction,
			Distance:        s.DistanceText,
			Duration:        s.DurationText,
			DurationSeconds: s.DurationSeconds,
		})
	}

	adjustedSeconds := int(math.Round(float64(route.TotalDurationSeconds) * adj.Multiplier))

	analysis := dto.TrafficAnalysisResponse{
		Multiplier:      adj.Multiplier,
		Confidence:      adj.Confidence,
		StreetsAnalyzed: adj.StreetsMatched,
	}
	for _, d := range adj.StreetDetails {
		analysis.StreetDetails = append(analysis.StreetDetails, dto.StreetDetailResponse{
			Street:            d.Street,
			TrafficLevel:      string(d.Level),
			Multiplier:        d.Multiplier,
			DailyVehicleCount: d.DailyVehicleCount,
			Weight:            d.Weight,
		})
	}

	out := dto.RouteResponse{
		Details:                 steps,
		TotalDuration:           route.TotalDurationText,
		TotalDurationSeconds:    route.TotalDurationSeconds,
		TotalDistance:           route.TotalDistanceText,
		Geometry:                route.Polyline,
		TrafficAdjustedDuration: formatDuration(float64(adjustedSeconds) / 60),
		TrafficAdjustedSeconds:  adjustedSeconds,
		TrafficAnalysis:         analysis,
	}

	if route.TrafficDurationSeconds != nil {
		seconds := *route.TrafficDurationSeconds
		out.ProviderTrafficDuration = formatDuration(float64(seconds) / 60)
		out.ProviderTrafficSeconds = seconds
	}

	return out
}
