package commands

import (
	"errors"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/guard"
)

var ErrDeleteTruckCommandIsNotConstructed = errors.New(
	"DeleteTruckCommand must be created via NewDeleteTruckCommand constructor",
)

// DeleteTruckCommand represents a request to remove a truck from the fleet.
type DeleteTruckCommand struct { //nolint:recvcheck //using for validation
	truckID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteTruckCommand creates a command to delete a truck.
func NewDeleteTruckCommand(truckID kernel.UUID) (DeleteTruckCommand, error) {
	cmd := DeleteTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTruckID(truckID); err != nil {
		return DeleteTruckCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTruckCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTruckCommandIsNotConstructed)
}

func (c DeleteTruckCommand) TruckID() kernel.UUID { return c.truckID }

func (c *DeleteTruckCommand) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}
	c.truckID = truckID
	return nil
}
