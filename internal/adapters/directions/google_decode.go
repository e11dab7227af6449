package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"traffic-route-service/internal/domain"
)

// StatusError reports a non-OK application status from the Directions API
// (NOT_FOUND, ZERO_RESULTS, OVER_QUERY_LIMIT, ...). The HTTP exchange itself
// succeeded; the provider rejected the query.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("directions status %s", e.Status)
	}
	return fmt.Sprintf("directions status %s: %s", e.Status, e.Message)
}

type textValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance          textValue  `json:"distance"`
			Duration          textValue  `json:"duration"`
			DurationInTraffic *textValue `json:"duration_in_traffic"`
			Steps             []struct {
				HTMLInstructions string    `json:"html_instructions"`
				Distance         textValue `json:"distance"`
				Duration         textValue `json:"duration"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// fetchRoutes queries the Directions API and maps the response into domain
// routes. Only the first leg of each route is used; requests carry a single
// origin/destination pair so multi-leg responses do not occur.
func (g *GoogleDirectionsProvider) fetchRoutes(
	ctx context.Context,
	origin string,
	destination string,
	mode string,
) ([]domain.Route, error) {
	endpoint := g.baseURL + "/maps/api/directions/json"

	buildURL := func() string {
		q := url.Values{}
		q.Set("origin", origin)
		q.Set("destination", destination)
		q.Set("mode", mode)
		q.Set("alternatives", "true")
		q.Set("departure_time", "now")
		q.Set("key", g.apiKey)
		return endpoint + "?" + q.Encode()
	}

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, buildURL())
	})
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if decoded.Status != "OK" {
		return nil, &StatusError{Status: decoded.Status, Message: decoded.ErrorMessage}
	}

	routes := make([]domain.Route, 0, len(decoded.Routes))
	for _, r := range decoded.Routes {
		if len(r.Legs) == 0 {
			continue
		}
		leg := r.Legs[0]

		steps := make([]domain.RouteStep, 0, len(leg.Steps))
		for _, s := range leg.Steps {
			steps = append(steps, domain.RouteStep{
				Instruction:     stripHTML(s.HTMLInstructions),
				DistanceText:    s.Distance.Text,
				DurationText:    s.Duration.Text,
				DistanceMeters:  s.Distance.Value,
				DurationSeconds: s.Duration.Value,
			})
		}

		route := domain.Route{
			Steps:                steps,
			TotalDurationText:    leg.Duration.Text,
			TotalDurationSeconds: leg.Duration.Value,
			TotalDistanceText:    leg.Distance.Text,
			Polyline:             r.OverviewPolyline.Points,
		}

		if leg.DurationInTraffic != nil {
			seconds := leg.DurationInTraffic.Value
			route.TrafficDurationSeconds = &seconds
		}

		routes = append(routes, route)
	}

	return routes, nil
}
