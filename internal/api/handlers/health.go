package handlers

import (
	"net/http"

	"traffic-route-service/internal/traffic"
)

// HealthHandler provides a minimal liveness check that also reports how many
// reference streets are loaded (zero indicates a bad or missing dataset).
type HealthHandler struct {
	Store *traffic.Store
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]any{
		"status":         "ok",
		"streets_loaded": h.Store.Len(),
	}
	writeJSON(w, r, http.StatusOK, res)
}
