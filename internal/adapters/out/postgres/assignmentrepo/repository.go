package assignmentrepo

import (
	"context"
	"errors"
	"time"

	"wastetrack/internal/core/domain/model/assignment"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/ports"
	"wastetrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Start activates a scheduled assignment with one conditional update scoped
// to the owning driver. Zero affected rows means the assignment does not
// exist, belongs to another driver or is not scheduled; callers get a single
// not-found error for all three cases.
func (r *GormAssignmentRepository) Start(ctx context.Context, id kernel.UUID,
	driverID kernel.UUID, now time.Time) error {
	if err := errors.Join(id.Validate(), driverID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("id = ? AND driver_id = ? AND status = ?",
			id.Bytes(), driverID.Bytes(), int(assignment.Scheduled)).
		Updates(map[string]any{
			"status":       int(assignment.Active),
			"actual_start": now,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", id.String())
	}

	return nil
}

// Complete finishes an active assignment under the same conditional-update
// contract as Start.
func (r *GormAssignmentRepository) Complete(ctx context.Context, id kernel.UUID,
	driverID kernel.UUID, now time.Time) error {
	if err := errors.Join(id.Validate(), driverID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("id = ? AND driver_id = ? AND status = ?",
			id.Bytes(), driverID.Bytes(), int(assignment.Active)).
		Updates(map[string]any{
			"status":     int(assignment.Completed),
			"actual_end": now,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", id.String())
	}

	return nil
}

// FindActiveForDriver returns the reference of the driver's active
// assignment, or nil when the driver has none.
func (r *GormAssignmentRepository) FindActiveForDriver(ctx context.Context,
	driverID kernel.UUID) (*ports.ActiveAssignmentRef, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Select("id", "truck_id").
		First(&dto, "driver_id = ? AND status = ?", driverID.Bytes(), int(assignment.Active)).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	truckID, err := kernel.UUIDFromBytes(dto.TruckID[:])
	if err != nil {
		return nil, err
	}

	return &ports.ActiveAssignmentRef{ID: id, TruckID: truckID}, nil
}
