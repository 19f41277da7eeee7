package commands

import (
	"context"

	"wastetrack/internal/core/domain/model/assignment"
	"wastetrack/internal/core/domain/model/kernel"
)

// CreateAssignmentCommandHandler handles scheduling of new assignments.
// The assignment is created in scheduled status with today's assigned date;
// overlapping schedules for the same truck or driver are not checked here.
type CreateAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewCreateAssignmentCommandHandler creates a handler for assignment
// scheduling.
func NewCreateAssignmentCommandHandler(uowFactory AssignmentUoWFactory) CreateAssignmentCommandHandler {
	return CreateAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the scheduling command and returns the new assignment's
// identifier.
func (h *CreateAssignmentCommandHandler) Handle(ctx context.Context, cmd CreateAssignmentCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := assignment.NewAssignment(
		cmd.RouteID(), cmd.TruckID(), cmd.DriverID(), cmd.AssignedByID(),
		cmd.ScheduledStart(), cmd.ScheduledEnd(), cmd.Notes())
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

	if err = uow.AssignmentRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
