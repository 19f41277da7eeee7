package commands

import (
	"errors"
	"fmt"
	"time"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
	"wastetrack/internal/pkg/guard"
)

var ErrCreateAssignmentCommandIsNotConstructed = errors.New(
	"CreateAssignmentCommand must be created via NewCreateAssignmentCommand constructor",
)

// CreateAssignmentCommand represents a dispatcher's request to schedule a
// driver and a truck on a route for a time window.
type CreateAssignmentCommand struct { //nolint:recvcheck //using for validation
	routeID        kernel.UUID
	truckID        kernel.UUID
	driverID       kernel.UUID
	assignedByID   kernel.UUID
	scheduledStart time.Time
	scheduledEnd   time.Time
	notes          string

	guard guard.ConstructorGuard
}

// NewCreateAssignmentCommand creates a command to schedule an assignment.
// All references must be valid and the scheduled window well-formed.
func NewCreateAssignmentCommand(
	routeID kernel.UUID,
	truckID kernel.UUID,
	driverID kernel.UUID,
	assignedByID kernel.UUID,
	scheduledStart time.Time,
	scheduledEnd time.Time,
	notes string,
) (CreateAssignmentCommand, error) {
	cmd := CreateAssignmentCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setTruckID(truckID),
		cmd.setDriverID(driverID),
		cmd.setAssignedByID(assignedByID),
		cmd.setScheduledWindow(scheduledStart, scheduledEnd),
	); err != nil {
		return CreateAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssignmentCommandIsNotConstructed)
}

func (c CreateAssignmentCommand) RouteID() kernel.UUID      { return c.routeID }
func (c CreateAssignmentCommand) TruckID() kernel.UUID      { return c.truckID }
func (c CreateAssignmentCommand) DriverID() kernel.UUID     { return c.driverID }
func (c CreateAssignmentCommand) AssignedByID() kernel.UUID { return c.assignedByID }
func (c CreateAssignmentCommand) ScheduledStart() time.Time { return c.scheduledStart }
func (c CreateAssignmentCommand) ScheduledEnd() time.Time   { return c.scheduledEnd }
func (c CreateAssignmentCommand) Notes() string             { return c.notes }

func (c *CreateAssignmentCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	c.routeID = routeID
	return nil
}

func (c *CreateAssignmentCommand) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}
	c.truckID = truckID
	return nil
}

func (c *CreateAssignmentCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *CreateAssignmentCommand) setAssignedByID(assignedByID kernel.UUID) error {
	if err := assignedByID.Validate(); err != nil {
		return err
	}
	c.assignedByID = assignedByID
	return nil
}

func (c *CreateAssignmentCommand) setScheduledWindow(start time.Time, end time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("scheduledStart")
	}
	if !end.After(start) {
		return errs.NewValueIsInvalidErrorWithCause("scheduledEnd is invalid",
			fmt.Errorf("%s is not after %s", end.Format(time.RFC3339), start.Format(time.RFC3339)))
	}
	c.scheduledStart = start
	c.scheduledEnd = end
	return nil
}
