package ports

import (
	"context"

	"wastetrack/internal/core/domain/model/account"
	"wastetrack/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for users,
// organizations and memberships.
type AccountRepository interface {
	// AddUser persists a new user. A duplicate email surfaces as a
	// conflict error.
	AddUser(ctx context.Context, user *account.User) error

	// GetUser retrieves a user by its unique identifier.
	GetUser(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetUserByEmail retrieves a user by normalized email.
	GetUserByEmail(ctx context.Context, email string) (*account.User, error)

	// AddOrganization persists a new organization.
	AddOrganization(ctx context.Context, organization *account.Organization) error

	// AddMembership persists a new membership. A second active membership
	// for the same user and organization surfaces as a conflict error.
	AddMembership(ctx context.Context, membership *account.Membership) error

	// FindActiveMembership returns the user's active membership, or nil
	// when the user has none and therefore acts as a citizen.
	FindActiveMembership(ctx context.Context, userID kernel.UUID) (*account.Membership, error)
}
