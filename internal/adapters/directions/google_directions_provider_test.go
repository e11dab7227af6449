package directions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const directionsFixture = `{
  "status": "OK",
  "routes": [
    {
      "overview_polyline": {"points": "abc123"},
      "legs": [
        {
          "distance": {"text": "6.2 km", "value": 6200},
          "duration": {"text": "14 mins", "value": 840},
          "duration_in_traffic": {"text": "16 mins", "value": 950},
          "steps": [
            {
              "html_instructions": "Turn <b>right</b> onto <b>Main St</b>",
              "distance": {"text": "1.0 km", "value": 1000},
              "duration": {"text": "3 mins", "value": 180}
            },
            {
              "html_instructions": "Continue on <b>Oak Ave</b><div style=\"font-size:0.9em\">Pass by the park</div>",
              "distance": {"text": "5.2 km", "value": 5200},
              "duration": {"text": "11 mins", "value": 660}
            }
          ]
        }
      ]
    }
  ]
}`

func newTestProvider(t *testing.T, handler http.HandlerFunc) *GoogleDirectionsProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	provider, err := NewGoogleDirectionsProvider("test-key", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	provider.baseURL = srv.URL

	return provider
}

func TestGetRoutesDecodesAndStripsHTML(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("origin"); got != "Downtown San Diego" {
			t.Errorf("origin = %q", got)
		}
		if got := r.URL.Query().Get("mode"); got != "driving" {
			t.Errorf("mode = %q", got)
		}
		w.Write([]byte(directionsFixture))
	})

	routes, err := provider.GetRoutes(context.Background(), "Downtown  San Diego", "La Jolla", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(routes))
	}
	route := routes[0]

	if len(route.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(route.Steps))
	}
	if route.Steps[0].Instruction != "Turn right onto Main St" {
		t.Errorf("instruction = %q", route.Steps[0].Instruction)
	}
	if route.Steps[1].Instruction != "Continue on Oak AvePass by the park" {
		t.Errorf("instruction = %q", route.Steps[1].Instruction)
	}

	if route.TotalDurationSeconds != 840 {
		t.Errorf("total duration = %d, want 840", route.TotalDurationSeconds)
	}
	if route.Polyline != "abc123" {
		t.Errorf("polyline = %q", route.Polyline)
	}
	if route.TrafficDurationSeconds == nil || *route.TrafficDurationSeconds != 950 {
		t.Errorf("traffic duration = %v, want 950", route.TrafficDurationSeconds)
	}
}

func TestGetRoutesNonOKStatus(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "NOT_FOUND", "error_message": "origin could not be geocoded", "routes": []}`))
	})

	_, err := provider.GetRoutes(context.Background(), "Nowhere", "La Jolla", "driving")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("got %v, want StatusError", err)
	}
	if statusErr.Status != "NOT_FOUND" {
		t.Errorf("status = %q, want NOT_FOUND", statusErr.Status)
	}
}

func TestGetRoutesEmptyLocationsRejected(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	if _, err := provider.GetRoutes(context.Background(), "  ", "La Jolla", "driving"); err == nil {
		t.Fatal("expected error for empty origin")
	}
}

func TestStripHTML(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Turn <b>right</b> onto <b>Main St</b>", "Turn right onto Main St"},
		{"plain text", "plain text"},
		{"<div>nested <span>tags</span></div>", "nested tags"},
		{"", ""},
	}

	for _, c := range cases {
		if got := stripHTML(c.in); got != c.want {
			t.Errorf("stripHTML(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
