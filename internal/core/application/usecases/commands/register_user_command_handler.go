package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"wastetrack/internal/core/domain/model/account"
	"wastetrack/internal/core/domain/model/kernel"
)

// RegisterUserCommandHandler creates user records. Passwords are hashed with
// bcrypt before the domain ever sees them; membership creation, when
// requested, happens in the same transaction as the user insert.
type RegisterUserCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for registrations.
func NewRegisterUserCommandHandler(uowFactory AccountUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration and returns the new user's identifier.
// A duplicate email surfaces as a conflict error from the repository.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return kernel.UUID{}, err
	}

	user, err := account.NewUser(cmd.Name(), cmd.Email(), string(hash))
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	if err = accountRepo.AddUser(ctx, user); err != nil {
		return kernel.UUID{}, err
	}

	if orgID := cmd.OrganizationID(); orgID != nil {
		membership, err := account.NewMembership(user.ID(), *orgID, cmd.Role())
		if err != nil {
			return kernel.UUID{}, err
		}
		if err = accountRepo.AddMembership(ctx, membership); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return user.ID(), nil
}
