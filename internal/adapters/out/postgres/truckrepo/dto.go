// Package truckrepo provides data transfer objects and mapping functions for
// truck persistence. License plate uniqueness is enforced by a database
// constraint and surfaced as a conflict error.
package truckrepo

import (
	"time"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

// TruckDTO represents the database structure for persisting truck aggregates.
type TruckDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	LicensePlate string    `gorm:"uniqueIndex;not null"`
	Active       bool
	CreatedAt    time.Time
}

// TableName specifies the database table name for truck entities.
func (TruckDTO) TableName() string {
	return "trucks"
}

// fromDomain converts a truck domain aggregate to its database
// representation.
func fromDomain(aggregate *truck.Truck) TruckDTO {
	return TruckDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		LicensePlate: aggregate.LicensePlate(),
		Active:       aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a truck domain aggregate using
// RestoreTruck.
func toDomain(dto TruckDTO) (*truck.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return truck.RestoreTruck(id, dto.Name, dto.LicensePlate, dto.Active, dto.CreatedAt)
}
