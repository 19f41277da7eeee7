package trackingrepo

import (
	"context"
	"errors"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/domain/model/tracking"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTrackingRepository implements TrackingRepository using GORM.
type GormTrackingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingRepository {
	return &GormTrackingRepository{
		db:      db,
		tracker: tracker,
	}
}

// UpsertCurrentLocation writes the projection row for the location's truck.
// Last writer wins; the row carries no version.
func (r *GormTrackingRepository) UpsertCurrentLocation(ctx context.Context,
	location *tracking.CurrentLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}

	dto := currentLocationFromDomain(location)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "truck_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(location.TruckID(), location)
	return nil
}

// AppendHistory appends one immutable history record.
func (r *GormTrackingRepository) AppendHistory(ctx context.Context,
	record *tracking.HistoryRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := historyRecordFromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetCurrentLocation returns the projection row for a truck, or nil when the
// truck has never reported.
func (r *GormTrackingRepository) GetCurrentLocation(ctx context.Context,
	truckID kernel.UUID) (*tracking.CurrentLocation, error) {
	if err := truckID.Validate(); err != nil {
		return nil, err
	}

	var dto CurrentLocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "truck_id = ?", truckID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return currentLocationToDomain(dto)
}

// UpsertCitizenLocation writes a citizen's stored home coordinate,
// overwriting any previous one.
func (r *GormTrackingRepository) UpsertCitizenLocation(ctx context.Context,
	location *tracking.CitizenLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}

	dto := citizenLocationFromDomain(location)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(location.UserID(), location)
	return nil
}

// GetCitizenLocation returns the citizen's stored coordinate, or nil when the
// citizen has never set one.
func (r *GormTrackingRepository) GetCitizenLocation(ctx context.Context,
	userID kernel.UUID) (*tracking.CitizenLocation, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto CitizenLocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return citizenLocationToDomain(dto)
}
