package commands

import (
	"errors"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/guard"
)

var ErrSetCitizenLocationCommandIsNotConstructed = errors.New(
	"SetCitizenLocationCommand must be created via NewSetCitizenLocationCommand constructor",
)

// SetCitizenLocationCommand represents a citizen storing or replacing their
// home coordinate, the point truck matching measures against.
type SetCitizenLocationCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	point  kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewSetCitizenLocationCommand creates a command to store a citizen's
// coordinate.
func NewSetCitizenLocationCommand(userID kernel.UUID, point kernel.GeoPoint) (SetCitizenLocationCommand, error) {
	cmd := SetCitizenLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPoint(point),
	); err != nil {
		return SetCitizenLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCitizenLocationCommand) Validate() error {
	return c.guard.Validate(ErrSetCitizenLocationCommandIsNotConstructed)
}

func (c SetCitizenLocationCommand) UserID() kernel.UUID    { return c.userID }
func (c SetCitizenLocationCommand) Point() kernel.GeoPoint { return c.point }

func (c *SetCitizenLocationCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *SetCitizenLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	c.point = point
	return nil
}
