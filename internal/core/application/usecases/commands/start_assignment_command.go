package commands

import (
	"errors"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/guard"
)

var ErrStartAssignmentCommandIsNotConstructed = errors.New(
	"StartAssignmentCommand must be created via NewStartAssignmentCommand constructor",
)

// StartAssignmentCommand represents a driver's request to begin a scheduled
// shift. The driver ID comes from the session, never from the request body,
// so a driver can only ever start their own assignment.
type StartAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	driverID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartAssignmentCommand creates a command to start an assignment.
func NewStartAssignmentCommand(assignmentID kernel.UUID, driverID kernel.UUID) (StartAssignmentCommand, error) {
	cmd := StartAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setDriverID(driverID),
	); err != nil {
		return StartAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrStartAssignmentCommandIsNotConstructed)
}

func (c StartAssignmentCommand) AssignmentID() kernel.UUID { return c.assignmentID }
func (c StartAssignmentCommand) DriverID() kernel.UUID     { return c.driverID }

func (c *StartAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}

func (c *StartAssignmentCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
