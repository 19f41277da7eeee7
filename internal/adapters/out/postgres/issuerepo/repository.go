package issuerepo

import (
	"context"
	"errors"

	"wastetrack/internal/core/domain/model/issue"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIssueRepository implements IssueRepository using GORM.
type GormIssueRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormIssueRepository creates a new GORM issue repository.
func NewGormIssueRepository(db *gorm.DB, tracker aggregateTracker) *GormIssueRepository {
	return &GormIssueRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new issue report to the database.
func (r *GormIssueRepository) Add(ctx context.Context, aggregate *issue.IssueReport) error {
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

// Get retrieves an issue report by ID.
func (r *GormIssueRepository) Get(ctx context.Context, id kernel.UUID) (*issue.IssueReport, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IssueDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("issue", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists triage changes to an existing issue report.
func (r *GormIssueRepository) Update(ctx context.Context, aggregate *issue.IssueReport) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&IssueDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("issue", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAll retrieves every issue report, newest first.
func (r *GormIssueRepository) GetAll(ctx context.Context) ([]*issue.IssueReport, error) {
	var dtos []IssueDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	issues := make([]*issue.IssueReport, 0, len(dtos))
	for _, dto := range dtos {
		i, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		issues = append(issues, i)
	}

	return issues, nil
}
