package ports

import (
	"context"

	"traffic-route-service/internal/domain"
)

// Contract for fetching turn-by-turn route alternatives from an external
// mapping provider.
type DirectionsProvider interface {
	// Return route alternatives between two free-text locations for a
	// travel mode ("driving", "walking", "bicycling", ...).
	GetRoutes(ctx context.Context, origin, destination, mode string) ([]domain.Route, error)
}
