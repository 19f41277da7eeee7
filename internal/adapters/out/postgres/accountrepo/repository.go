package accountrepo

import (
	"context"
	"errors"
	"strings"

	"wastetrack/internal/core/domain/model/account"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddUser saves a new user to the database. A violated email constraint is
// surfaced as a conflict error.
func (r *GormAccountRepository) AddUser(ctx context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("Email already registered", err)
		}
		return err
	}

	r.tracker.TrackAggregate(user.ID(), user)
	return nil
}

// GetUser retrieves a user by ID.
func (r *GormAccountRepository) GetUser(ctx context.Context, id kernel.UUID) (*account.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return userToDomain(dto)
}

// GetUserByEmail retrieves a user by normalized email.
func (r *GormAccountRepository) GetUserByEmail(ctx context.Context, email string) (*account.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", normalized)
		}
		return nil, err
	}

	return userToDomain(dto)
}

// AddOrganization saves a new organization to the database.
func (r *GormAccountRepository) AddOrganization(ctx context.Context,
	organization *account.Organization) error {
	if err := organization.Validate(); err != nil {
		return err
	}

	dto := organizationFromDomain(organization)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(organization.ID(), organization)
	return nil
}

// AddMembership saves a new membership to the database. A user already
// holding an active membership cannot receive a second one.
func (r *GormAccountRepository) AddMembership(ctx context.Context,
	membership *account.Membership) error {
	if err := membership.Validate(); err != nil {
		return err
	}

	if membership.IsActive() {
		var count int64
		err := r.db.WithContext(ctx).Model(&MembershipDTO{}).
			Where("user_id = ? AND active = true", membership.UserID().Bytes()).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return errs.NewConflictError("user already has an active membership")
		}
	}

	dto := membershipFromDomain(membership)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(membership.ID(), membership)
	return nil
}

// FindActiveMembership returns the user's active membership, or nil when the
// user has none and therefore acts as a citizen.
func (r *GormAccountRepository) FindActiveMembership(ctx context.Context,
	userID kernel.UUID) (*account.Membership, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto MembershipDTO
	err := r.db.WithContext(ctx).
		First(&dto, "user_id = ? AND active = true", userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return membershipToDomain(dto)
}
