package directions

import (
	"context"
	"fmt"

	"traffic-route-service/internal/domain"
)

type MockQuery struct {
	Origin, Destination, Mode string
	Routes                    []domain.Route
}

type MockDirectionsProvider struct {
	m map[string][]domain.Route
}

func NewMockDirectionsProvider(queries []MockQuery) *MockDirectionsProvider {
	m := make(map[string][]domain.Route, len(queries))
	for _, q := range queries {
		m[q.Origin+"|"+q.Destination+"|"+q.Mode] = q.Routes
	}
	return &MockDirectionsProvider{m: m}
}

func (p *MockDirectionsProvider) GetRoutes(ctx context.Context, origin, destination, mode string) ([]domain.Route, error) {
	routes, ok := p.m[origin+"|"+destination+"|"+mode]
	if !ok {
		return nil, fmt.Errorf("missing query %q -> %q (%s)", origin, destination, mode)
	}

	return routes, nil
}
