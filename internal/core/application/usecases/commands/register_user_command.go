package commands

import (
	"errors"
	"strings"

	"wastetrack/internal/core/domain/model/account"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
	"wastetrack/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

const minPasswordLength = 8

// RegisterUserCommand represents a signup request. A plain registration
// creates a citizen; supplying an organization and role additionally creates
// an active membership, which is how fleets seed their staff.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name           string
	email          string
	password       string
	organizationID *kernel.UUID
	role           account.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a citizen registration command.
func NewRegisterUserCommand(name string, email string, password string) (RegisterUserCommand, error) {
	return newRegisterUserCommand(name, email, password, nil, "")
}

// NewRegisterMemberCommand creates a registration command that also grants
// an organization membership with the given role.
func NewRegisterMemberCommand(name string, email string, password string,
	organizationID kernel.UUID, role account.Role) (RegisterUserCommand, error) {
	if err := organizationID.Validate(); err != nil {
		return RegisterUserCommand{}, err
	}
	if err := role.Validate(); err != nil {
		return RegisterUserCommand{}, err
	}
	return newRegisterUserCommand(name, email, password, &organizationID, role)
}

func newRegisterUserCommand(name string, email string, password string,
	organizationID *kernel.UUID, role account.Role) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		organizationID: organizationID,
		role:           role,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Name() string                 { return c.name }
func (c RegisterUserCommand) Email() string                { return c.email }
func (c RegisterUserCommand) Password() string             { return c.password }
func (c RegisterUserCommand) OrganizationID() *kernel.UUID { return c.organizationID }
func (c RegisterUserCommand) Role() account.Role           { return c.role }

func (c *RegisterUserCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}
	c.password = password
	return nil
}
