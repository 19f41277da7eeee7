package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wastetrack/internal/core/domain/model/account"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
)

// ResolveAccountQueryHandler resolves a user id into an account with a
// single query: the user row left-joined with their active membership.
// A user without an active membership resolves to a citizen account.
type ResolveAccountQueryHandler struct {
	db *gorm.DB
}

// NewResolveAccountQueryHandler creates a handler for account resolution.
func NewResolveAccountQueryHandler(db *gorm.DB) ResolveAccountQueryHandler {
	return ResolveAccountQueryHandler{db: db}
}

// Handle executes the resolution. Unknown or deactivated users get an
// authentication error, never a citizen account.
func (h ResolveAccountQueryHandler) Handle(
	ctx context.Context,
	query ResolveAccountQuery,
) (account.Account, error) {
	if err := query.Validate(); err != nil {
		return account.Account{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.active,
			m.organization_id,
			m.role
		FROM users u
		LEFT JOIN memberships m ON m.user_id = u.id AND m.active = true
		WHERE u.id = ?
		LIMIT 1
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return account.Account{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return account.Account{}, err
		}
		return account.Account{}, errs.NewAuthenticationError("unknown user")
	}

	var (
		active         bool
		organizationID *uuid.UUID
		role           *string
	)
	if err = rows.Scan(&active, &organizationID, &role); err != nil {
		return account.Account{}, err
	}

	if !active {
		return account.Account{}, errs.NewAuthenticationError("user is deactivated")
	}

	if organizationID == nil || role == nil {
		return account.NewCitizenAccount(query.UserID())
	}

	orgID, err := kernel.UUIDFromBytes(organizationID[:])
	if err != nil {
		return account.Account{}, err
	}
	parsedRole, err := account.ParseRole(*role)
	if err != nil {
		return account.Account{}, err
	}

	return account.NewMemberAccount(query.UserID(), orgID, parsedRole)
}
