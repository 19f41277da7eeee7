// Package assignmentrepo provides data transfer objects and mapping functions
// for assignment persistence. Lifecycle transitions are implemented as single
// conditional updates so that concurrent starts or completions of the same
// assignment cannot both succeed.
package assignmentrepo

import (
	"time"

	"wastetrack/internal/core/domain/model/assignment"
	"wastetrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment
// aggregates. Status is stored as its integer representation and indexed
// together with the driver for the active-assignment lookup.
type AssignmentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID        uuid.UUID `gorm:"type:uuid;index"`
	TruckID        uuid.UUID `gorm:"type:uuid;index"`
	DriverID       uuid.UUID `gorm:"type:uuid;index:idx_assignments_driver_status"`
	AssignedByID   uuid.UUID `gorm:"type:uuid"`
	AssignedDate   time.Time
	ScheduledStart time.Time
	ScheduledEnd   time.Time
	ActualStart    *time.Time
	ActualEnd      *time.Time
	Notes          string
	Status         int `gorm:"index:idx_assignments_driver_status"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain aggregate to its database
// representation.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:             aggregate.ID().Bytes(),
		RouteID:        aggregate.RouteID().Bytes(),
		TruckID:        aggregate.TruckID().Bytes(),
		DriverID:       aggregate.DriverID().Bytes(),
		AssignedByID:   aggregate.AssignedByID().Bytes(),
		AssignedDate:   aggregate.AssignedDate(),
		ScheduledStart: aggregate.ScheduledStart(),
		ScheduledEnd:   aggregate.ScheduledEnd(),
		ActualStart:    aggregate.ActualStart(),
		ActualEnd:      aggregate.ActualEnd(),
		Notes:          aggregate.Notes(),
		Status:         int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate using
// RestoreAssignment.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	truckID, err := kernel.UUIDFromBytes(dto.TruckID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	assignedByID, err := kernel.UUIDFromBytes(dto.AssignedByID[:])
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id,
		routeID,
		truckID,
		driverID,
		assignedByID,
		dto.AssignedDate,
		dto.ScheduledStart,
		dto.ScheduledEnd,
		dto.ActualStart,
		dto.ActualEnd,
		dto.Notes,
		assignment.Status(dto.Status),
	)
}
