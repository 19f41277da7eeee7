package commands

import (
	"errors"
	"strings"

	"wastetrack/internal/pkg/errs"
	"wastetrack/internal/pkg/guard"
)

var ErrCreateTruckCommandIsNotConstructed = errors.New(
	"CreateTruckCommand must be created via NewCreateTruckCommand constructor",
)

// CreateTruckCommand represents a request to register a new truck.
type CreateTruckCommand struct { //nolint:recvcheck //using for validation
	name         string
	licensePlate string

	guard guard.ConstructorGuard
}

// NewCreateTruckCommand creates a command to register a truck.
func NewCreateTruckCommand(name string, licensePlate string) (CreateTruckCommand, error) {
	cmd := CreateTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setLicensePlate(licensePlate),
	); err != nil {
		return CreateTruckCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTruckCommand) Validate() error {
	return c.guard.Validate(ErrCreateTruckCommandIsNotConstructed)
}

func (c CreateTruckCommand) Name() string         { return c.name }
func (c CreateTruckCommand) LicensePlate() string { return c.licensePlate }

func (c *CreateTruckCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateTruckCommand) setLicensePlate(licensePlate string) error {
	if strings.TrimSpace(licensePlate) == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}
	c.licensePlate = licensePlate
	return nil
}
