package ports

import (
	"context"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
// A route and its waypoints are written together; the aggregate boundary is
// the transaction boundary.
type RouteRepository interface {
	// Add persists a route together with all its waypoints. Either
	// everything is written or nothing is.
	Add(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route with its waypoints ordered by sequence number.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetAll retrieves every route without waypoints, for listings.
	GetAll(ctx context.Context) ([]*route.Route, error)
}
