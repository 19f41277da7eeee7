package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wastetrack/internal/core/domain/model/assignment"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
)

// GetCurrentAssignmentQueryHandler retrieves the driver's work card.
// A driver with no scheduled or active assignment gets a not-found error;
// that is the normal state for a driver without work, not a fault.
type GetCurrentAssignmentQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentAssignmentQueryHandler creates a handler for current
// assignment queries.
func NewGetCurrentAssignmentQueryHandler(db *gorm.DB) GetCurrentAssignmentQueryHandler {
	return GetCurrentAssignmentQueryHandler{db: db}
}

// Handle executes the query: the single scheduled-or-active assignment with
// the soonest scheduled start, joined with route and truck display fields
// and the route's waypoints ordered by sequence number.
func (h GetCurrentAssignmentQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentAssignmentQuery,
) (GetCurrentAssignmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCurrentAssignmentQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.status,
			a.scheduled_start,
			a.scheduled_end,
			a.notes,
			r.id,
			r.name,
			t.id,
			t.name,
			t.license_plate
		FROM assignments a
		JOIN routes r ON r.id = a.route_id
		JOIN trucks t ON t.id = a.truck_id
		WHERE a.driver_id = ? AND a.status IN (?, ?)
		ORDER BY a.scheduled_start
		LIMIT 1
	`, query.DriverID().Bytes(), int(assignment.Scheduled), int(assignment.Active)).Rows()
	if err != nil {
		return GetCurrentAssignmentQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetCurrentAssignmentQueryResponse{}, err
		}
		return GetCurrentAssignmentQueryResponse{},
			errs.NewObjectNotFoundError("assignment", query.DriverID().String())
	}

	var (
		response                     GetCurrentAssignmentQueryResponse
		assignmentID, routeID        uuid.UUID
		truckID                      uuid.UUID
		status                       int
		scheduledStart, scheduledEnd time.Time
	)
	err = rows.Scan(
		&assignmentID, &status, &scheduledStart, &scheduledEnd, &response.Notes,
		&routeID, &response.RouteName,
		&truckID, &response.TruckName, &response.LicensePlate,
	)
	if err != nil {
		return GetCurrentAssignmentQueryResponse{}, err
	}
	rows.Close()

	if response.AssignmentID, err = kernel.UUIDFromBytes(assignmentID[:]); err != nil {
		return GetCurrentAssignmentQueryResponse{}, err
	}
	if response.RouteID, err = kernel.UUIDFromBytes(routeID[:]); err != nil {
		return GetCurrentAssignmentQueryResponse{}, err
	}
	if response.TruckID, err = kernel.UUIDFromBytes(truckID[:]); err != nil {
		return GetCurrentAssignmentQueryResponse{}, err
	}
	response.Status = assignment.Status(status).String()
	response.ScheduledStart = scheduledStart
	response.ScheduledEnd = scheduledEnd

	response.Waypoints, err = h.routeWaypoints(ctx, response.RouteID)
	if err != nil {
		return GetCurrentAssignmentQueryResponse{}, err
	}

	return response, nil
}

func (h GetCurrentAssignmentQueryHandler) routeWaypoints(ctx context.Context, routeID kernel.UUID) ([]WaypointResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT sequence_order, latitude, longitude, label
		FROM waypoints
		WHERE route_id = ?
		ORDER BY sequence_order
	`, routeID.Bytes()).Rows()
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
