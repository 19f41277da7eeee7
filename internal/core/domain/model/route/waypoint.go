package route

import (
	"errors"
	"fmt"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
	"wastetrack/internal/pkg/guard"
)

// ErrWaypointIsNotConstructed is returned when a Waypoint instance was not
// created through NewWaypoint or RestoreWaypoint.
var ErrWaypointIsNotConstructed = errors.New(
	"Waypoint must be created via NewWaypoint or RestoreWaypoint constructors")

// Waypoint is a stop on a route, identified within the route by its positive
// sequence number. Waypoints are entities owned by the Route aggregate and
// are never mutated after creation.
type Waypoint struct {
	id            kernel.UUID
	sequenceOrder int
	point         kernel.GeoPoint
	label         string

	guard guard.ConstructorGuard
}

// NewWaypoint creates a waypoint. The sequence number must be positive; label
// is optional display text.
func NewWaypoint(sequenceOrder int, point kernel.GeoPoint, label string) (*Waypoint, error) {
	waypoint := &Waypoint{
		id:    kernel.NewUUID(),
		label: label,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		waypoint.setSequenceOrder(sequenceOrder),
		waypoint.setPoint(point),
	); err != nil {
		return nil, err
	}

	return waypoint, nil
}

// RestoreWaypoint hydrates a waypoint from persistence.
func RestoreWaypoint(id kernel.UUID, sequenceOrder int, point kernel.GeoPoint, label string) (*Waypoint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	waypoint := &Waypoint{
		id:    id,
		label: label,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		waypoint.setSequenceOrder(sequenceOrder),
		waypoint.setPoint(point),
	); err != nil {
		return nil, err
	}

	return waypoint, nil
}

// Validate ensures the Waypoint was created through a constructor.
func (w *Waypoint) Validate() error {
	if w == nil {
		return ErrWaypointIsNotConstructed
	}
	return w.guard.Validate(ErrWaypointIsNotConstructed)
}

func (w *Waypoint) ID() kernel.UUID        { return w.id }
func (w *Waypoint) SequenceOrder() int     { return w.sequenceOrder }
func (w *Waypoint) Point() kernel.GeoPoint { return w.point }
func (w *Waypoint) Label() string          { return w.label }

func (w *Waypoint) setSequenceOrder(sequenceOrder int) error {
	if sequenceOrder <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("sequenceOrder is invalid",
			fmt.Errorf("%d is not greater than 0", sequenceOrder))
	}
	w.sequenceOrder = sequenceOrder
	return nil
}

func (w *Waypoint) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	w.point = point
	return nil
}
