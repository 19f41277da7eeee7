package queries

import (
	"context"

	"gorm.io/gorm"

	"wastetrack/internal/pkg/errs"
)

// GetRouteWaypointsQueryHandler lists a route's waypoints ordered by
// sequence number.
type GetRouteWaypointsQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteWaypointsQueryHandler creates a handler for waypoint listings.
func NewGetRouteWaypointsQueryHandler(db *gorm.DB) GetRouteWaypointsQueryHandler {
	return GetRouteWaypointsQueryHandler{db: db}
}

// Handle executes the query. An unknown route is a not-found error; a known
// route with no waypoints returns an empty list.
func (h GetRouteWaypointsQueryHandler) Handle(
	ctx context.Context,
	query GetRouteWaypointsQuery,
) ([]WaypointResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var count int64
	if err := h.db.WithContext(ctx).
		Table("routes").
		Where("id = ?", query.RouteID().Bytes()).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("route", query.RouteID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT sequence_order, latitude, longitude, label
		FROM waypoints
		WHERE route_id = ?
		ORDER BY sequence_order
	`, query.RouteID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	waypoints := make([]WaypointResponse, 0)
	for rows.Next() {
		var wp WaypointResponse
		if err = rows.Scan(&wp.SequenceOrder, &wp.Latitude, &wp.Longitude, &wp.Label); err != nil {
			return nil, err
		}
		waypoints = append(waypoints, wp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return waypoints, nil
}
