package route

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
	"wastetrack/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when a Route instance was not created
// through NewRoute or RestoreRoute.
var ErrRouteIsNotConstructed = errors.New(
	"Route must be created via NewRoute or RestoreRoute constructors")

// Status is the publication state of a route. Unlike assignments, routes have
// no ordered lifecycle; any state may be set directly by an administrator.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Validate checks the status against the closed set of route states.
func (s Status) Validate() error {
	switch s {
	case StatusDraft, StatusActive, StatusInactive:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%q is not a valid route status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// Route is the aggregate root for a collection route: a named start point
// with an ordered list of waypoints. Waypoints live and die with their route;
// they are created together in one transaction and fetched ordered by
// sequence number.
type Route struct {
	id               kernel.UUID
	name             string
	startPoint       kernel.GeoPoint
	estimatedMinutes int
	status           Status
	createdByID      kernel.UUID
	createdAt        time.Time
	waypoints        []*Waypoint

	guard guard.ConstructorGuard
}

// NewRoute creates a draft route with its waypoints. Waypoint sequence
// numbers must be positive and unique within the route.
func NewRoute(
	name string,
	startPoint kernel.GeoPoint,
	estimatedMinutes int,
	createdByID kernel.UUID,
	waypoints []*Waypoint,
) (*Route, error) {
	route := &Route{
		id:        kernel.NewUUID(),
		status:    StatusDraft,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		route.setName(name),
		route.setStartPoint(startPoint),
		route.setEstimatedMinutes(estimatedMinutes),
		route.setCreatedByID(createdByID),
		route.setWaypoints(waypoints),
	); err != nil {
		return nil, err
	}

	return route, nil
}

// RestoreRoute hydrates a route from persistence.
func RestoreRoute(
	id kernel.UUID,
	name string,
	startPoint kernel.GeoPoint,
	estimatedMinutes int,
	status Status,
	createdByID kernel.UUID,
	createdAt time.Time,
	waypoints []*Waypoint,
) (*Route, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	route := &Route{
		id:        id,
		status:    status,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		route.setName(name),
		route.setStartPoint(startPoint),
		route.setEstimatedMinutes(estimatedMinutes),
		route.setCreatedByID(createdByID),
		route.setWaypoints(waypoints),
	); err != nil {
		return nil, err
	}

	return route, nil
}

// Validate ensures the Route was created through a constructor.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r *Route) ID() kernel.UUID             { return r.id }
func (r *Route) Name() string                { return r.name }
func (r *Route) StartPoint() kernel.GeoPoint { return r.startPoint }
func (r *Route) EstimatedMinutes() int       { return r.estimatedMinutes }
func (r *Route) Status() Status              { return r.status }
func (r *Route) CreatedByID() kernel.UUID    { return r.createdByID }
func (r *Route) CreatedAt() time.Time        { return r.createdAt }

// Waypoints returns the route's waypoints ordered ascending by sequence
// number.
func (r *Route) Waypoints() []*Waypoint {
	return r.waypoints
}

// SetStatus moves the route to any valid publication state.
func (r *Route) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Route) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = strings.TrimSpace(name)
	return nil
}

func (r *Route) setStartPoint(startPoint kernel.GeoPoint) error {
	if err := startPoint.Validate(); err != nil {
		return err
	}
	r.startPoint = startPoint
	return nil
}

func (r *Route) setEstimatedMinutes(estimatedMinutes int) error {
	if estimatedMinutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedMinutes is invalid",
			fmt.Errorf("%d is not greater than 0", estimatedMinutes))
	}
	r.estimatedMinutes = estimatedMinutes
	return nil
}

func (r *Route) setCreatedByID(createdByID kernel.UUID) error {
	if err := createdByID.Validate(); err != nil {
		return err
	}
	r.createdByID = createdByID
	return nil
}

// setWaypoints validates each waypoint, rejects duplicate sequence numbers
// and stores the list sorted ascending. Gaps in the numbering are allowed.
func (r *Route) setWaypoints(waypoints []*Waypoint) error {
	seen := make(map[int]bool, len(waypoints))
	for _, wp := range waypoints {
		if err := wp.Validate(); err != nil {
			return err
		}
		if seen[wp.SequenceOrder()] {
			return errs.NewValueIsInvalidErrorWithCause("waypoints are invalid",
				fmt.Errorf("sequence order %d appears more than once", wp.SequenceOrder()))
		}
		seen[wp.SequenceOrder()] = true
	}

	sorted := make([]*Waypoint, len(waypoints))
	copy(sorted, waypoints)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].SequenceOrder() > sorted[j].SequenceOrder(); j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}

	r.waypoints = sorted
	return nil
}
