package queries

import (
	"errors"
	"time"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/guard"
)

var ErrGetCurrentAssignmentQueryIsNotConstructed = errors.New(
	"GetCurrentAssignmentQuery must be created via NewGetCurrentAssignmentQuery constructor",
)

// GetCurrentAssignmentQuery retrieves a driver's current work: the scheduled
// or active assignment with the soonest scheduled start.
type GetCurrentAssignmentQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCurrentAssignmentQuery creates a current assignment query for one
// driver.
func NewGetCurrentAssignmentQuery(driverID kernel.UUID) (GetCurrentAssignmentQuery, error) {
	query := GetCurrentAssignmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := driverID.Validate(); err != nil {
		return GetCurrentAssignmentQuery{}, err
	}
	query.driverID = driverID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentAssignmentQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentAssignmentQueryIsNotConstructed)
}

// DriverID returns the driver whose work is requested.
func (q GetCurrentAssignmentQuery) DriverID() kernel.UUID {
	return q.driverID
}

// WaypointResponse is one ordered stop of the assignment's route.
type WaypointResponse struct {
	SequenceOrder int
	Latitude      float64
	Longitude     float64
	Label         string
}

// GetCurrentAssignmentQueryResponse is the driver's work card: the
// assignment joined with route and truck display fields and the route's
// ordered waypoints.
type GetCurrentAssignmentQueryResponse struct {
	AssignmentID   kernel.UUID
	Status         string
	ScheduledStart time.Time
	ScheduledEnd   time.Time
	Notes          string
	RouteID        kernel.UUID
	RouteName      string
	TruckID        kernel.UUID
	TruckName      string
	LicensePlate   string
	Waypoints      []WaypointResponse
}
