package commands

import (
	"context"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/domain/model/route"
)

// CreateRouteCommandHandler creates a route with its waypoints in one
// transaction. Creating a route with N waypoints and fetching them back
// returns exactly N records ordered by sequence number, or the creation
// fails as a whole.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route creation.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the new route's
// identifier.
func (h *CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	waypoints := make([]*route.Waypoint, 0, len(cmd.Waypoints()))
	for _, input := range cmd.Waypoints() {
		wp, err := route.NewWaypoint(input.SequenceOrder, input.Point, input.Label)
		if err != nil {
			return kernel.UUID{}, err
		}
		waypoints = append(waypoints, wp)
	}

	aggregate, err := route.NewRoute(
		cmd.Name(), cmd.StartPoint(), cmd.EstimatedMinutes(), cmd.CreatedByID(), waypoints)
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

	if err = uow.RouteRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
