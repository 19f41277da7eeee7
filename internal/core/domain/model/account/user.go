package account

import (
	"errors"
	"strings"
	"time"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
	"wastetrack/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created through
	// NewUser or RestoreUser.
	ErrUserIsNotConstructed = errs.NewValueIsRequiredError(
		"user must be created via NewUser or RestoreUser constructors")

	// ErrOrganizationIsNotConstructed is returned when an Organization was not
	// created through NewOrganization or RestoreOrganization.
	ErrOrganizationIsNotConstructed = errs.NewValueIsRequiredError(
		"organization must be created via NewOrganization or RestoreOrganization constructors")

	// ErrMembershipIsNotConstructed is returned when a Membership was not
	// created through NewMembership or RestoreMembership.
	ErrMembershipIsNotConstructed = errs.NewValueIsRequiredError(
		"membership must be created via NewMembership or RestoreMembership constructors")
)

// User is a registered person. Whether the person acts as a member or a
// citizen is not a property of the user itself, it is derived from the
// presence of an active membership.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	active       bool
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewUser registers a user. The password hash must already be computed by the
// caller, the domain never sees plaintext passwords.
func NewUser(name string, email string, passwordHash string) (*User, error) {
	err := errors.Join(
		validateName(name),
		validateEmail(email),
		validatePasswordHash(passwordHash),
	)
	if err != nil {
		return nil, err
	}

	return &User{
		id:           kernel.NewUUID(),
		name:         strings.TrimSpace(name),
		email:        normalizeEmail(email),
		passwordHash: passwordHash,
		active:       true,
		createdAt:    time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreUser hydrates a user from storage without re-running registration
// invariants.
func RestoreUser(id kernel.UUID, name string, email string, passwordHash string,
	active bool, createdAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		active:       active,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) IsActive() bool       { return u.active }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// Deactivate blocks the user from authenticating.
func (u *User) Deactivate() {
	u.active = false
}

// Validate checks that the User came from a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}

func validateEmail(email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidError("email")
	}
	return nil
}

func validatePasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Organization is a municipal fleet operator. Users belong to organizations
// through memberships.
type Organization struct {
	id        kernel.UUID
	name      string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrganization creates an organization.
func NewOrganization(name string) (*Organization, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Organization{
		id:        kernel.NewUUID(),
		name:      strings.TrimSpace(name),
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrganization hydrates an organization from storage.
func RestoreOrganization(id kernel.UUID, name string, createdAt time.Time) *Organization {
	return &Organization{
		id:        id,
		name:      name,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}
}

func (o *Organization) ID() kernel.UUID      { return o.id }
func (o *Organization) Name() string         { return o.name }
func (o *Organization) CreatedAt() time.Time { return o.createdAt }

// Validate checks that the Organization came from a constructor.
func (o *Organization) Validate() error {
	if o == nil {
		return ErrOrganizationIsNotConstructed
	}
	return o.guard.Validate(ErrOrganizationIsNotConstructed)
}

// Membership binds a user to an organization with a role. A user holds at
// most one active membership per organization, the storage layer enforces
// this with a partial unique index.
type Membership struct {
	id             kernel.UUID
	userID         kernel.UUID
	organizationID kernel.UUID
	role           Role
	active         bool
	createdAt      time.Time

	guard guard.ConstructorGuard
}

// NewMembership grants a user a role within an organization.
func NewMembership(userID kernel.UUID, organizationID kernel.UUID, role Role) (*Membership, error) {
	err := errors.Join(
		userID.Validate(),
		organizationID.Validate(),
		role.Validate(),
	)
	if err != nil {
		return nil, err
	}

	return &Membership{
		id:             kernel.NewUUID(),
		userID:         userID,
		organizationID: organizationID,
		role:           role,
		active:         true,
		createdAt:      time.Now().UTC(),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreMembership hydrates a membership from storage.
func RestoreMembership(id kernel.UUID, userID kernel.UUID, organizationID kernel.UUID,
	role Role, active bool, createdAt time.Time) *Membership {
	return &Membership{
		id:             id,
		userID:         userID,
		organizationID: organizationID,
		role:           role,
		active:         active,
		createdAt:      createdAt,
		guard:          guard.NewConstructorGuard(),
	}
}

func (m *Membership) ID() kernel.UUID             { return m.id }
func (m *Membership) UserID() kernel.UUID         { return m.userID }
func (m *Membership) OrganizationID() kernel.UUID { return m.organizationID }
func (m *Membership) Role() Role                  { return m.role }
func (m *Membership) IsActive() bool              { return m.active }
func (m *Membership) CreatedAt() time.Time        { return m.createdAt }

// Revoke ends the membership. The user becomes a citizen again unless another
// active membership exists.
func (m *Membership) Revoke() {
	m.active = false
}

// Validate checks that the Membership came from a constructor.
func (m *Membership) Validate() error {
	if m == nil {
		return ErrMembershipIsNotConstructed
	}
	return m.guard.Validate(ErrMembershipIsNotConstructed)
}
