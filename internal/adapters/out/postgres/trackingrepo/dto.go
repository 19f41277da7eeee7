// Package trackingrepo provides data transfer objects and mapping functions
// for the live-position read model: the one-row-per-truck current-location
// projection, the append-only history log and citizen home coordinates.
package trackingrepo

import (
	"time"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// GeoPointDTO represents embedded coordinate columns.
type GeoPointDTO struct {
	Latitude  float64
	Longitude float64
}

// CurrentLocationDTO represents the per-truck current-location projection.
// The truck ID is the primary key; each location report overwrites the row.
type CurrentLocationDTO struct {
	TruckID      uuid.UUID   `gorm:"type:uuid;primaryKey"`
	AssignmentID uuid.UUID   `gorm:"type:uuid;index"`
	Point        GeoPointDTO `gorm:"embedded"`
	SpeedKmh     *float64
	Heading      *float64
	UpdatedAt    time.Time `gorm:"index"`
}

// TableName specifies the database table name for current-location rows.
func (CurrentLocationDTO) TableName() string {
	return "truck_locations"
}

// HistoryRecordDTO represents one immutable entry of the location history.
type HistoryRecordDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	TruckID      uuid.UUID   `gorm:"type:uuid;index"`
	AssignmentID uuid.UUID   `gorm:"type:uuid;index"`
	Point        GeoPointDTO `gorm:"embedded"`
	SpeedKmh     *float64
	Heading      *float64
	RecordedAt   time.Time
}

// TableName specifies the database table name for history entries.
func (HistoryRecordDTO) TableName() string {
	return "location_history"
}

// CitizenLocationDTO represents a citizen's stored home coordinate,
// one row per user.
type CitizenLocationDTO struct {
	UserID    uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Point     GeoPointDTO `gorm:"embedded"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for citizen coordinates.
func (CitizenLocationDTO) TableName() string {
	return "citizen_locations"
}

func currentLocationFromDomain(location *tracking.CurrentLocation) CurrentLocationDTO {
	return CurrentLocationDTO{
		TruckID:      location.TruckID().Bytes(),
		AssignmentID: location.AssignmentID().Bytes(),
		Point: GeoPointDTO{
			Latitude:  location.Point().Latitude(),
			Longitude: location.Point().Longitude(),
		},
		SpeedKmh:  location.SpeedKmh(),
		Heading:   location.Heading(),
		UpdatedAt: location.UpdatedAt(),
	}
}

func currentLocationToDomain(dto CurrentLocationDTO) (*tracking.CurrentLocation, error) {
	truckID, err := kernel.UUIDFromBytes(dto.TruckID[:])
	if err != nil {
		return nil, err
	}

	assignmentID, err := kernel.UUIDFromBytes(dto.AssignmentID[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Point.Latitude, dto.Point.Longitude)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreCurrentLocation(
		truckID, assignmentID, point, dto.SpeedKmh, dto.Heading, dto.UpdatedAt), nil
}

func historyRecordFromDomain(record *tracking.HistoryRecord) HistoryRecordDTO {
	return HistoryRecordDTO{
		ID:           record.ID().Bytes(),
		TruckID:      record.TruckID().Bytes(),
		AssignmentID: record.AssignmentID().Bytes(),
		Point: GeoPointDTO{
			Latitude:  record.Point().Latitude(),
			Longitude: record.Point().Longitude(),
		},
		SpeedKmh:   record.SpeedKmh(),
		Heading:    record.Heading(),
		RecordedAt: record.RecordedAt(),
	}
}

func citizenLocationFromDomain(location *tracking.CitizenLocation) CitizenLocationDTO {
	return CitizenLocationDTO{
		UserID: location.UserID().Bytes(),
		Point: GeoPointDTO{
			Latitude:  location.Point().Latitude(),
			Longitude: location.Point().Longitude(),
		},
		UpdatedAt: location.UpdatedAt(),
	}
}

func citizenLocationToDomain(dto CitizenLocationDTO) (*tracking.CitizenLocation, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Point.Latitude, dto.Point.Longitude)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreCitizenLocation(userID, point, dto.UpdatedAt), nil
}
