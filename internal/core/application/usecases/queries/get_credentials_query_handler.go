package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
)

// GetCredentialsQueryHandler looks up login credentials by email.
type GetCredentialsQueryHandler struct {
	db *gorm.DB
}

// NewGetCredentialsQueryHandler creates a handler for credential lookups.
func NewGetCredentialsQueryHandler(db *gorm.DB) GetCredentialsQueryHandler {
	return GetCredentialsQueryHandler{db: db}
}

// Handle executes the lookup. An unknown email is an authentication error;
// the login flow reports it identically to a wrong password.
func (h GetCredentialsQueryHandler) Handle(
	ctx context.Context,
	query GetCredentialsQuery,
) (GetCredentialsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCredentialsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, password_hash, active
		FROM users
		WHERE email = ?
	`, query.Email()).Rows()
	if err != nil {
		return GetCredentialsQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetCredentialsQueryResponse{}, err
		}
		return GetCredentialsQueryResponse{}, errs.NewAuthenticationError("invalid credentials")
	}

	var response GetCredentialsQueryResponse
	var id uuid.UUID
	if err = rows.Scan(&id, &response.PasswordHash, &response.Active); err != nil {
		return GetCredentialsQueryResponse{}, err
	}

	if response.UserID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetCredentialsQueryResponse{}, err
	}

	return response, nil
}
