// Package accountrepo provides data transfer objects and mapping functions
// for user, organization and membership persistence.
package accountrepo

import (
	"time"

	"wastetrack/internal/core/domain/model/account"
	"wastetrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
// Email uniqueness is enforced by a database constraint.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Active       bool
	CreatedAt    time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// OrganizationDTO represents the database structure for persisting
// organizations.
type OrganizationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for organization entities.
func (OrganizationDTO) TableName() string {
	return "organizations"
}

// MembershipDTO represents the database structure for persisting memberships.
// A user holds at most one active membership; authorization treats users
// without one as citizens.
type MembershipDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;index:idx_memberships_user_active"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`
	Role           string    `gorm:"not null"`
	Active         bool      `gorm:"index:idx_memberships_user_active"`
	CreatedAt      time.Time
}

// TableName specifies the database table name for membership entities.
func (MembershipDTO) TableName() string {
	return "memberships"
}

func userFromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:           user.ID().Bytes(),
		Name:         user.Name(),
		Email:        user.Email(),
		PasswordHash: user.PasswordHash(),
		Active:       user.IsActive(),
		CreatedAt:    user.CreatedAt(),
	}
}

func userToDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.Name, dto.Email, dto.PasswordHash,
		dto.Active, dto.CreatedAt), nil
}

func organizationFromDomain(organization *account.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:        organization.ID().Bytes(),
		Name:      organization.Name(),
		CreatedAt: organization.CreatedAt(),
	}
}

func membershipFromDomain(membership *account.Membership) MembershipDTO {
	return MembershipDTO{
		ID:             membership.ID().Bytes(),
		UserID:         membership.UserID().Bytes(),
		OrganizationID: membership.OrganizationID().Bytes(),
		Role:           string(membership.Role()),
		Active:         membership.IsActive(),
		CreatedAt:      membership.CreatedAt(),
	}
}

func membershipToDomain(dto MembershipDTO) (*account.Membership, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreMembership(id, userID, organizationID, role,
		dto.Active, dto.CreatedAt), nil
}
