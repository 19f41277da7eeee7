package commands

import (
	"context"
	"time"
)

// CompleteAssignmentCommandHandler moves an assignment from active to
// completed under the same conditional-update contract as starting: one
// guarded statement, zero matched rows means not found.
type CompleteAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
	now        func() time.Time
}

// NewCompleteAssignmentCommandHandler creates a handler for completing
// assignments.
func NewCompleteAssignmentCommandHandler(uowFactory AssignmentUoWFactory) CompleteAssignmentCommandHandler {
	return CompleteAssignmentCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the complete command.
func (h *CompleteAssignmentCommandHandler) Handle(ctx context.Context, cmd CompleteAssignmentCommand) error {
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

	if err := uow.AssignmentRepository().Complete(ctx, cmd.AssignmentID(), cmd.DriverID(), h.now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
