// Package account models organizational identity: users, memberships, roles,
// and the resolved account kind attached to each authenticated request.
//
// "Citizen" is not a stored role. A user with no active membership in any
// organization is a citizen; the kind is derived exactly once, at session
// resolution, and every authorization decision branches on the resolved value.
package account

import (
	"fmt"

	"wastetrack/internal/pkg/errs"
)

// Role is a user's role within one organization. A user holds at most one
// active membership, and therefore at most one role, per organization.
type Role string

const (
	// RoleOwner satisfies every role check regardless of an endpoint's
	// allow-list (owner bypass).
	RoleOwner Role = "owner"
	// RoleAdmin manages routes, trucks, assignments, and issues.
	RoleAdmin Role = "admin"
	// RoleSupervisor has the same dispatch powers as admin.
	RoleSupervisor Role = "supervisor"
	// RoleDriver operates assignments and reports positions.
	RoleDriver Role = "driver"
)

// ParseRole converts a stored string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate rejects roles outside the closed set.
func (r Role) Validate() error {
	switch r {
	case RoleOwner, RoleAdmin, RoleSupervisor, RoleDriver:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
