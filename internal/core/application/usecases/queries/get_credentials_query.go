package queries

import (
	"errors"
	"strings"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
	"wastetrack/internal/pkg/guard"
)

var ErrGetCredentialsQueryIsNotConstructed = errors.New(
	"GetCredentialsQuery must be created via NewGetCredentialsQuery constructor",
)

// GetCredentialsQuery looks up a user's stored credentials by email for the
// login flow.
type GetCredentialsQuery struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewGetCredentialsQuery creates a credentials lookup query. The email is
// normalized the same way registration normalizes it.
func NewGetCredentialsQuery(email string) (GetCredentialsQuery, error) {
	query := GetCredentialsQuery{
		guard: guard.NewConstructorGuard(),
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return GetCredentialsQuery{}, errs.NewValueIsRequiredError("email")
	}
	query.email = email

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCredentialsQuery) Validate() error {
	return q.guard.Validate(ErrGetCredentialsQueryIsNotConstructed)
}

// Email returns the normalized lookup email.
func (q GetCredentialsQuery) Email() string {
	return q.email
}

// GetCredentialsQueryResponse carries what the login flow needs to verify a
// password and issue a session.
type GetCredentialsQueryResponse struct {
	UserID       kernel.UUID
	PasswordHash string
	Active       bool
}
