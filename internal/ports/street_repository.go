package ports

import (
	"context"

	"traffic-route-service/internal/domain"
)

// Port: a boundary for loading traffic dataset rows from a data source.
type StreetRepository interface {
	// Retrieve all street rows available for the reference store.
	ListStreets(ctx context.Context) ([]domain.StreetRow, error)
}
