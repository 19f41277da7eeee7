package commands

import (
	"context"
	"time"
)

// StartAssignmentCommandHandler moves an assignment from scheduled to active.
//
// The transition is a single conditional update in the repository, guarded on
// assignment id, owning driver and current status. There is no read before
// the write, so two concurrent starts cannot both succeed: the loser matches
// zero rows and gets a not-found error.
type StartAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
	now        func() time.Time
}

// NewStartAssignmentCommandHandler creates a handler for starting
// assignments.
func NewStartAssignmentCommandHandler(uowFactory AssignmentUoWFactory) StartAssignmentCommandHandler {
	return StartAssignmentCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the start command. A not-found error means the assignment
// does not exist, belongs to another driver, or is not in scheduled status;
// the caller cannot tell which, and the response does not say.
func (h *StartAssignmentCommandHandler) Handle(ctx context.Context, cmd StartAssignmentCommand) error {
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

	if err := uow.AssignmentRepository().Start(ctx, cmd.AssignmentID(), cmd.DriverID(), h.now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
