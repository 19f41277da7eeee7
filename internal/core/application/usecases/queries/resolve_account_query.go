package queries

import (
	"errors"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/guard"
)

var ErrResolveAccountQueryIsNotConstructed = errors.New(
	"ResolveAccountQuery must be created via NewResolveAccountQuery constructor",
)

// ResolveAccountQuery turns an authenticated user id into an account: the
// user joined with their active membership, if any. The session middleware
// runs it once per request.
type ResolveAccountQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveAccountQuery creates an account resolution query.
func NewResolveAccountQuery(userID kernel.UUID) (ResolveAccountQuery, error) {
	query := ResolveAccountQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := userID.Validate(); err != nil {
		return ResolveAccountQuery{}, err
	}
	query.userID = userID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolveAccountQuery) Validate() error {
	return q.guard.Validate(ErrResolveAccountQueryIsNotConstructed)
}

// UserID returns the user being resolved.
func (q ResolveAccountQuery) UserID() kernel.UUID {
	return q.userID
}
