package commands

import (
	"context"
)

// DeleteTruckCommandHandler removes trucks from the fleet. Location history
// referencing the truck is untouched.
type DeleteTruckCommandHandler struct {
	uowFactory TruckUoWFactory
}

// NewDeleteTruckCommandHandler creates a handler for truck deletion.
func NewDeleteTruckCommandHandler(uowFactory TruckUoWFactory) DeleteTruckCommandHandler {
	return DeleteTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command. Deleting an unknown truck is a
// not-found error.
func (h *DeleteTruckCommandHandler) Handle(ctx context.Context, cmd DeleteTruckCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TruckRepository().Delete(ctx, cmd.TruckID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
