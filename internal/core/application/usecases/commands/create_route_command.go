package commands

import (
	"errors"
	"fmt"
	"strings"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
	"wastetrack/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// WaypointInput is one waypoint of a route creation request, already
// boundary-validated into a GeoPoint.
type WaypointInput struct {
	SequenceOrder int
	Point         kernel.GeoPoint
	Label         string
}

// CreateRouteCommand represents a request to create a route together with
// all its waypoints. The write is all-or-nothing.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	name             string
	startPoint       kernel.GeoPoint
	estimatedMinutes int
	createdByID      kernel.UUID
	waypoints        []WaypointInput

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to create a route with waypoints.
func NewCreateRouteCommand(
	name string,
	startPoint kernel.GeoPoint,
	estimatedMinutes int,
	createdByID kernel.UUID,
	waypoints []WaypointInput,
) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		waypoints: waypoints,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setStartPoint(startPoint),
		cmd.setEstimatedMinutes(estimatedMinutes),
		cmd.setCreatedByID(createdByID),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

func (c CreateRouteCommand) Name() string                { return c.name }
func (c CreateRouteCommand) StartPoint() kernel.GeoPoint { return c.startPoint }
func (c CreateRouteCommand) EstimatedMinutes() int       { return c.estimatedMinutes }
func (c CreateRouteCommand) CreatedByID() kernel.UUID    { return c.createdByID }
func (c CreateRouteCommand) Waypoints() []WaypointInput  { return c.waypoints }

func (c *CreateRouteCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateRouteCommand) setStartPoint(startPoint kernel.GeoPoint) error {
	if err := startPoint.Validate(); err != nil {
		return err
	}
	c.startPoint = startPoint
	return nil
}

func (c *CreateRouteCommand) setEstimatedMinutes(estimatedMinutes int) error {
	if estimatedMinutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedMinutes is invalid",
			fmt.Errorf("%d is not greater than 0", estimatedMinutes))
	}
	c.estimatedMinutes = estimatedMinutes
	return nil
}

func (c *CreateRouteCommand) setCreatedByID(createdByID kernel.UUID) error {
	if err := createdByID.Validate(); err != nil {
		return err
	}
	c.createdByID = createdByID
	return nil
}
