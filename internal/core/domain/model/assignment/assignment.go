package assignment

import (
	"errors"
	"fmt"
	"time"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
	"wastetrack/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment instance was
// not created through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment or RestoreAssignment constructors")

// Assignment is the aggregate root binding a driver and a truck to a route
// for a scheduled shift. It owns the Scheduled -> Active -> Completed
// lifecycle.
//
// Invariants:
//   - Route, truck, driver and assigning user references must be valid UUIDs.
//   - scheduledEnd must be strictly after scheduledStart.
//   - Status transitions follow the Status state machine; actualStart and
//     actualEnd are stamped exactly once, by Start and Complete.
type Assignment struct {
	id             kernel.UUID
	routeID        kernel.UUID
	truckID        kernel.UUID
	driverID       kernel.UUID
	assignedByID   kernel.UUID
	assignedDate   time.Time
	scheduledStart time.Time
	scheduledEnd   time.Time
	actualStart    *time.Time
	actualEnd      *time.Time
	notes          string
	status         Status

	guard guard.ConstructorGuard
}

// NewAssignment creates a Scheduled assignment for today's date.
// All reference IDs must be valid and the scheduled window must be
// well-formed.
func NewAssignment(
	routeID kernel.UUID,
	truckID kernel.UUID,
	driverID kernel.UUID,
	assignedByID kernel.UUID,
	scheduledStart time.Time,
	scheduledEnd time.Time,
	notes string,
) (*Assignment, error) {
	assignment := &Assignment{
		id:           kernel.NewUUID(),
		assignedDate: truncateToDate(time.Now().UTC()),
		notes:        notes,
		status:       Scheduled,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignment.setRouteID(routeID),
		assignment.setTruckID(truckID),
		assignment.setDriverID(driverID),
		assignment.setAssignedByID(assignedByID),
		assignment.setScheduledWindow(scheduledStart, scheduledEnd),
	); err != nil {
		return nil, err
	}

	return assignment, nil
}

// RestoreAssignment hydrates an assignment from persistence.
// The stored status must be a valid lifecycle state.
func RestoreAssignment(
	id kernel.UUID,
	routeID kernel.UUID,
	truckID kernel.UUID,
	driverID kernel.UUID,
	assignedByID kernel.UUID,
	assignedDate time.Time,
	scheduledStart time.Time,
	scheduledEnd time.Time,
	actualStart *time.Time,
	actualEnd *time.Time,
	notes string,
	status Status,
) (*Assignment, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	assignment := &Assignment{
		id:           id,
		assignedDate: assignedDate,
		actualStart:  actualStart,
		actualEnd:    actualEnd,
		notes:        notes,
		status:       status,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignment.setRouteID(routeID),
		assignment.setTruckID(truckID),
		assignment.setDriverID(driverID),
		assignment.setAssignedByID(assignedByID),
		assignment.setScheduledWindow(scheduledStart, scheduledEnd),
	); err != nil {
		return nil, err
	}

	return assignment, nil
}

// Validate ensures the Assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// IsEqual compares two assignments by their identifiers.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

func (a *Assignment) ID() kernel.UUID           { return a.id }
func (a *Assignment) RouteID() kernel.UUID      { return a.routeID }
func (a *Assignment) TruckID() kernel.UUID      { return a.truckID }
func (a *Assignment) DriverID() kernel.UUID     { return a.driverID }
func (a *Assignment) AssignedByID() kernel.UUID { return a.assignedByID }
func (a *Assignment) AssignedDate() time.Time   { return a.assignedDate }
func (a *Assignment) ScheduledStart() time.Time { return a.scheduledStart }
func (a *Assignment) ScheduledEnd() time.Time   { return a.scheduledEnd }
func (a *Assignment) ActualStart() *time.Time   { return a.actualStart }
func (a *Assignment) ActualEnd() *time.Time     { return a.actualEnd }
func (a *Assignment) Notes() string             { return a.notes }
func (a *Assignment) Status() Status            { return a.status }

// Start moves the assignment from Scheduled to Active and stamps the actual
// shift start.
func (a *Assignment) Start(now time.Time) error {
	newStatus, err := a.status.Start()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.actualStart = &now
	return nil
}

// Complete moves the assignment from Active to Completed and stamps the
// actual shift end.
func (a *Assignment) Complete(now time.Time) error {
	newStatus, err := a.status.Complete()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.actualEnd = &now
	return nil
}

func (a *Assignment) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	a.routeID = routeID
	return nil
}

func (a *Assignment) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}
	a.truckID = truckID
	return nil
}

func (a *Assignment) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	a.driverID = driverID
	return nil
}

func (a *Assignment) setAssignedByID(assignedByID kernel.UUID) error {
	if err := assignedByID.Validate(); err != nil {
		return err
	}
	a.assignedByID = assignedByID
	return nil
}

func (a *Assignment) setScheduledWindow(start time.Time, end time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("scheduledStart")
	}
	if end.IsZero() {
		return errs.NewValueIsRequiredError("scheduledEnd")
	}
	if !end.After(start) {
		return errs.NewValueIsInvalidErrorWithCause("scheduledEnd is invalid",
			fmt.Errorf("%s is not after %s", end.Format(time.RFC3339), start.Format(time.RFC3339)))
	}
	a.scheduledStart = start
	a.scheduledEnd = end
	return nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
