package account

import (
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
	"wastetrack/internal/pkg/guard"
)

// Kind is the derived account classification resolved at session time.
type Kind string

const (
	// KindMember is a user holding an active membership in an organization.
	KindMember Kind = "member"
	// KindCitizen is a user with no active membership anywhere.
	KindCitizen Kind = "citizen"
)

// ErrAccountIsNotConstructed is returned when an Account did not come from
// NewMemberAccount or NewCitizenAccount.
var ErrAccountIsNotConstructed = errs.NewValueIsRequiredError(
	"account must be created via NewMemberAccount or NewCitizenAccount constructors")

// Account is the caller identity resolved once per request by the session
// middleware and consumed by every authorization check downstream. It is
// immutable for the lifetime of the request.
type Account struct {
	userID         kernel.UUID
	kind           Kind
	role           Role
	organizationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMemberAccount creates the account of a user with an active membership.
func NewMemberAccount(userID kernel.UUID, organizationID kernel.UUID, role Role) (Account, error) {
	if err := userID.Validate(); err != nil {
		return Account{}, err
	}
	if err := organizationID.Validate(); err != nil {
		return Account{}, err
	}
	if err := role.Validate(); err != nil {
		return Account{}, err
	}

	return Account{
		userID:         userID,
		kind:           KindMember,
		role:           role,
		organizationID: organizationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// NewCitizenAccount creates the account of a user without any active
// membership.
func NewCitizenAccount(userID kernel.UUID) (Account, error) {
	if err := userID.Validate(); err != nil {
		return Account{}, err
	}

	return Account{
		userID: userID,
		kind:   KindCitizen,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Account came from a constructor.
func (a Account) Validate() error {
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// UserID returns the authenticated user's identifier.
func (a Account) UserID() kernel.UUID {
	return a.userID
}

// Kind returns the derived account kind.
func (a Account) Kind() Kind {
	return a.kind
}

// Role returns the membership role. Only meaningful for KindMember.
func (a Account) Role() Role {
	return a.role
}

// OrganizationID returns the active organization. Only meaningful for
// KindMember.
func (a Account) OrganizationID() kernel.UUID {
	return a.organizationID
}

// Authorize decides whether the account may proceed against an endpoint's
// allow-list. An empty allow-list admits any authenticated caller. The owner
// role is admitted unconditionally. A citizen is denied by any non-empty
// allow-list.
func (a Account) Authorize(allowedRoles ...Role) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if len(allowedRoles) == 0 {
		return nil
	}

	if a.kind == KindCitizen {
		return errs.NewAuthorizationError("an organization membership is required")
	}

	if a.role == RoleOwner {
		return nil
	}

	for _, allowed := range allowedRoles {
		if a.role == allowed {
			return nil
		}
	}

	return errs.NewAuthorizationError("insufficient role")
}

// AuthorizeCitizen admits exactly the callers with no active membership.
func (a Account) AuthorizeCitizen() error {
	if err := a.Validate(); err != nil {
		return err
	}

	if a.kind != KindCitizen {
		return errs.NewAuthorizationError("endpoint is restricted to citizen accounts")
	}

	return nil
}
