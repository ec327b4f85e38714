package auth

import "reservabar/internal/model"

// Action identifies an operation subject to authorization.
type Action string

const (
	// ActionReadUser reads a single user record.
	ActionReadUser Action = "read_user"
	// ActionListUsers lists all user records.
	ActionListUsers Action = "list_users"
	// ActionUpdateUser modifies a user record.
	ActionUpdateUser Action = "update_user"
	// ActionDeleteUser removes a user record.
	ActionDeleteUser Action = "delete_user"
)

// Decision reasons.
const (
	ReasonAdmin         = "admin"
	ReasonOwner         = "owner"
	ReasonAdminOnly     = "admin_only"
	ReasonNotOwner      = "not_owner"
	ReasonUnknownRole   = "unknown_role"
	ReasonUnknownAction = "unknown_action"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allow  bool
	Reason string
}

// Authorize decides whether actor may perform action against the user
// identified by targetID. Admins may do anything; clients may only act on
// their own record and never list all users. Unrecognized roles or actions
// are denied outright rather than silently granted.
func Authorize(actor *model.User, action Action, targetID uint) Decision {
	if actor == nil || !actor.Role.Valid() {
		return Decision{Allow: false, Reason: ReasonUnknownRole}
	}

	switch action {
	case ActionListUsers:
		if actor.Role == model.RoleAdmin {
			return Decision{Allow: true, Reason: ReasonAdmin}
		}
		return Decision{Allow: false, Reason: ReasonAdminOnly}
	case ActionReadUser, ActionUpdateUser, ActionDeleteUser:
		if actor.Role == model.RoleAdmin {
			return Decision{Allow: true, Reason: ReasonAdmin}
		}
		if actor.ID == targetID {
			return Decision{Allow: true, Reason: ReasonOwner}
		}
		return Decision{Allow: false, Reason: ReasonNotOwner}
	default:
		return Decision{Allow: false, Reason: ReasonUnknownAction}
	}
}
