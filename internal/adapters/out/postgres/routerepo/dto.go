// Package routerepo provides data transfer objects and mapping functions for
// route persistence. A route and its waypoints form one aggregate and are
// written together.
package routerepo

import (
	"time"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// GeoPointDTO represents embedded coordinate columns.
type GeoPointDTO struct {
	Latitude  float64
	Longitude float64
}

// RouteDTO represents the database structure for persisting route aggregates.
type RouteDTO struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name             string      `gorm:"not null"`
	StartPoint       GeoPointDTO `gorm:"embedded;embeddedPrefix:start_"`
	EstimatedMinutes int
	Status           string
	CreatedByID      uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time

	Waypoints []WaypointDTO `gorm:"foreignKey:RouteID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// WaypointDTO represents one stop on a route.
type WaypointDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	RouteID       uuid.UUID   `gorm:"type:uuid;index"`
	SequenceOrder int         `gorm:"not null"`
	Point         GeoPointDTO `gorm:"embedded"`
	Label         string
}

// TableName specifies the database table name for waypoint entities.
func (WaypointDTO) TableName() string {
	return "waypoints"
}

// fromDomain converts a route domain aggregate with its waypoints to the
// database representation.
func fromDomain(aggregate *route.Route) RouteDTO {
	waypoints := make([]WaypointDTO, 0, len(aggregate.Waypoints()))
	for _, wp := range aggregate.Waypoints() {
		waypoints = append(waypoints, WaypointDTO{
			ID:            wp.ID().Bytes(),
			RouteID:       aggregate.ID().Bytes(),
			SequenceOrder: wp.SequenceOrder(),
			Point: GeoPointDTO{
				Latitude:  wp.Point().Latitude(),
				Longitude: wp.Point().Longitude(),
			},
			Label: wp.Label(),
		})
	}

	return RouteDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		StartPoint: GeoPointDTO{
			Latitude:  aggregate.StartPoint().Latitude(),
			Longitude: aggregate.StartPoint().Longitude(),
		},
		EstimatedMinutes: aggregate.EstimatedMinutes(),
		Status:           aggregate.Status().String(),
		CreatedByID:      aggregate.CreatedByID().Bytes(),
		CreatedAt:        aggregate.CreatedAt(),
		Waypoints:        waypoints,
	}
}

// toDomain converts a database DTO to a route domain aggregate using
// RestoreRoute. Waypoint ordering is re-established by the domain model.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	createdByID, err := kernel.UUIDFromBytes(dto.CreatedByID[:])
	if err != nil {
		return nil, err
	}

	startPoint, err := kernel.NewGeoPoint(dto.StartPoint.Latitude, dto.StartPoint.Longitude)
	if err != nil {
		return nil, err
	}

	waypoints := make([]*route.Waypoint, 0, len(dto.Waypoints))
	for _, wpDTO := range dto.Waypoints {
		wpID, wpErr := kernel.UUIDFromBytes(wpDTO.ID[:])
		if wpErr != nil {
			return nil, wpErr
		}

		point, wpErr := kernel.NewGeoPoint(wpDTO.Point.Latitude, wpDTO.Point.Longitude)
		if wpErr != nil {
			return nil, wpErr
		}

		wp, wpErr := route.RestoreWaypoint(wpID, wpDTO.SequenceOrder, point, wpDTO.Label)
		if wpErr != nil {
			return nil, wpErr
		}

		waypoints = append(waypoints, wp)
	}

	return route.RestoreRoute(
		id,
		dto.Name,
		startPoint,
		dto.EstimatedMinutes,
		route.Status(dto.Status),
		createdByID,
		dto.CreatedAt,
		waypoints,
	)
}
