package queries

import (
	"errors"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/guard"
)

var ErrGetRouteWaypointsQueryIsNotConstructed = errors.New(
	"GetRouteWaypointsQuery must be created via NewGetRouteWaypointsQuery constructor",
)

// GetRouteWaypointsQuery retrieves the ordered waypoints of one route.
type GetRouteWaypointsQuery struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRouteWaypointsQuery creates a waypoint listing query for one route.
func NewGetRouteWaypointsQuery(routeID kernel.UUID) (GetRouteWaypointsQuery, error) {
	query := GetRouteWaypointsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := routeID.Validate(); err != nil {
		return GetRouteWaypointsQuery{}, err
	}
	query.routeID = routeID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRouteWaypointsQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteWaypointsQueryIsNotConstructed)
}

// RouteID returns the route whose waypoints are requested.
func (q GetRouteWaypointsQuery) RouteID() kernel.UUID {
	return q.routeID
}
