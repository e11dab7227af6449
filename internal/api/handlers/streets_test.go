package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"traffic-route-service/internal/api/dto"
	"traffic-route-service/internal/domain"
	"traffic-route-service/internal/traffic"
)

func newTestStreetHandler() *StreetHandler {
	store := traffic.NewStore([]domain.StreetRow{
		{StreetName: "University Ave", DailyVehicleCount: 38000}, // HIGH x1.35
	})
	return &StreetHandler{Store: store}
}

func TestStreetTrafficKnownStreet(t *testing.T) {
	h := newTestStreetHandler()

	req := httptest.NewRequest(http.MethodGet, "/street_traffic?street=University+Ave", nil)
	rec := httptest.NewRecorder()

	h.StreetTraffic(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.StreetTrafficResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.TrafficLevel != string(domain.TrafficHigh) {
		t.Errorf("traffic level = %q, want HIGH", res.TrafficLevel)
	}
	if res.Multiplier != 1.35 {
		t.Errorf("multiplier = %v, want 1.35", res.Multiplier)
	}
	if res.DailyVehicleCount != 38000 {
		t.Errorf("count = %d, want 38000", res.DailyVehicleCount)
	}
}

func TestStreetTrafficUnknownStreetReturnsSentinel(t *testing.T) {
	h := newTestStreetHandler()

	req := httptest.NewRequest(http.MethodGet, "/street_traffic?street=Nowhere+Ln", nil)
	rec := httptest.NewRecorder()

	h.StreetTraffic(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (unknown street is not an error)", rec.Code)
	}

	var res dto.StreetTrafficResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.TrafficLevel != string(domain.TrafficUnknown) {
		t.Errorf("traffic level = %q, want UNKNOWN", res.TrafficLevel)
	}
	if res.Multiplier != 1.0 {
		t.Errorf("multiplier = %v, want neutral 1.0", res.Multiplier)
	}
}

func TestStreetTrafficMissingParam(t *testing.T) {
	h := newTestStreetHandler()

	req := httptest.NewRequest(http.MethodGet, "/street_traffic", nil)
	rec := httptest.NewRecorder()

	h.StreetTraffic(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestStreetTrafficWrongMethod(t *testing.T) {
	h := newTestStreetHandler()

	req := httptest.NewRequest(http.MethodPost, "/street_traffic?street=University+Ave", nil)
	rec := httptest.NewRecorder()

	h.StreetTraffic(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
