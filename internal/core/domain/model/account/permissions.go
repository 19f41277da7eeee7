package account

// Resource names a protected entity class.
type Resource string

// Action names an operation on a resource. Actions are resource-specific;
// the table below defines which combinations exist.
type Action string

const (
	ResourceRoute      Resource = "route"
	ResourceTruck      Resource = "truck"
	ResourceAssignment Resource = "assignment"
	ResourceIssue      Resource = "issue"
	ResourceLocation   Resource = "location"
)

const (
	ActionCreate   Action = "create"
	ActionRead     Action = "read"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
	ActionReport   Action = "report"
)

// permissions is the static role/permission table. It is built once at
// package initialization and never mutated afterwards; Can is a pure read.
// RoleOwner is deliberately absent: the owner bypass in Authorize makes a
// table row redundant. Assignment read is driver-scoped: a driver reads
// their own current assignment, dispatchers only schedule and correct.
var permissions = map[Role]map[Resource][]Action{
	RoleAdmin: {
		ResourceRoute:      {ActionCreate, ActionRead, ActionUpdate, ActionDelete},
		ResourceTruck:      {ActionCreate, ActionRead, ActionUpdate, ActionDelete},
		ResourceAssignment: {ActionCreate, ActionUpdate, ActionDelete},
		ResourceIssue:      {ActionRead, ActionUpdate},
	},
	RoleSupervisor: {
		ResourceRoute:      {ActionCreate, ActionRead, ActionUpdate, ActionDelete},
		ResourceTruck:      {ActionCreate, ActionRead, ActionUpdate, ActionDelete},
		ResourceAssignment: {ActionCreate, ActionUpdate, ActionDelete},
		ResourceIssue:      {ActionRead, ActionUpdate},
	},
	RoleDriver: {
		ResourceAssignment: {ActionRead, ActionStart, ActionComplete},
		ResourceLocation:   {ActionReport},
		ResourceIssue:      {ActionCreate},
	},
}

// Can reports whether a role may perform an action on a resource according
// to the static table. RoleOwner is always allowed.
func Can(role Role, resource Resource, action Action) bool {
	if role == RoleOwner {
		return true
	}
	actions, ok := permissions[role][resource]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

// RolesAllowed returns every role the table permits for (resource, action),
// excluding RoleOwner, which bypasses allow-lists entirely. The router uses
// this to derive each endpoint's allow-list from the same immutable table.
func RolesAllowed(resource Resource, action Action) []Role {
	roles := make([]Role, 0, len(permissions))
	for _, role := range []Role{RoleAdmin, RoleSupervisor, RoleDriver} {
		if Can(role, resource, action) {
			roles = append(roles, role)
		}
	}
	return roles
}
