package ports

import (
	"context"

	"traffic-route-service/internal/domain"
)

// Cache for directions lookups keyed by origin, destination and travel mode.
// Entries expire quickly since traffic-aware results go stale.
type DirectionsCache interface {
	// Return cached routes; ok=false on miss or expiry.
	Get(ctx context.Context, origin, destination, mode string) (routes []domain.Route, ok bool, err error)
	// Store routes for the given lookup key.
	Put(ctx context.Context, origin, destination, mode string, routes []domain.Route) error
}
