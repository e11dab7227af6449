package handlers

import (
	"log"
	"net/http"
	"strings"

	"traffic-route-service/internal/api/dto"
	"traffic-route-service/internal/traffic"
)

// StreetHandler exposes ad-hoc single-street congestion lookups,
// independent of any route.
type StreetHandler struct {
	Store *traffic.Store
}

func (h *StreetHandler) StreetTraffic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	street := strings.TrimSpace(r.URL.Query().Get("street"))
	if street == "" {
		writeError(w, r, http.StatusBadRequest, "street parameter required")
		return
	}

	rec, ok, err := h.Store.Lookup(street)
	if err != nil {
		log.Printf("street lookup failed: %v", err)
		writeError(w, r, http.StatusBadRequest, "invalid street parameter")
		return
	}
	if !ok {
		// Unseeded streets resolve to the neutral sentinel, not an error.
		rec = traffic.UnknownRecord(street)
	}

	res := dto.StreetTrafficResponse{
		Street:            street,
		TrafficLevel:      string(rec.Level),
		Multiplier:        rec.Multiplier,
		DailyVehicleCount: rec.DailyVehicleCount,
	}

	writeJSON(w, r, http.StatusOK, res)
}
