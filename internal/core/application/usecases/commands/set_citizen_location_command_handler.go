package commands

import (
	"context"
	"time"

	"wastetrack/internal/core/domain/model/tracking"
)

// SetCitizenLocationCommandHandler stores a citizen's home coordinate,
// overwriting any previous value.
type SetCitizenLocationCommandHandler struct {
	uowFactory TrackingUoWFactory
	now        func() time.Time
}

// NewSetCitizenLocationCommandHandler creates a handler for citizen
// coordinate updates.
func NewSetCitizenLocationCommandHandler(uowFactory TrackingUoWFactory) SetCitizenLocationCommandHandler {
	return SetCitizenLocationCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the update.
func (h *SetCitizenLocationCommandHandler) Handle(ctx context.Context, cmd SetCitizenLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	location, err := tracking.NewCitizenLocation(cmd.UserID(), cmd.Point(), h.now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TrackingRepository().UpsertCitizenLocation(ctx, location); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
