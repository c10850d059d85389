package user

import (
	"errors"

	"github.com/rpatel-116/uniclash/internal/role"
)

// Role is the privilege level attached to a user account. It lives in the
// leaf internal/role package so that session can name it without importing
// user; the alias keeps user.Role as the name the rest of the tree uses.
type Role = role.Role

const (
	RoleUser       = role.RoleUser
	RolePlayer     = role.RolePlayer
	RoleCollegeRep = role.RoleCollegeRep
	RoleModerator  = role.RoleModerator
	RoleAdmin      = role.RoleAdmin
	RoleSuperAdmin = role.RoleSuperAdmin
)

// ValidRoles lists every assignable role, ordered by privilege.
var ValidRoles = []Role{RoleUser, RolePlayer, RoleCollegeRep, RoleModerator, RoleAdmin, RoleSuperAdmin}

// Errors returned by the role change and deletion checks. The messages are the
// exact strings surfaced to API callers.
var (
	ErrTargetSuperAdmin  = errors.New("Cannot modify SuperAdmin users")
	ErrOwnRole           = errors.New("Cannot change your own role")
	ErrAdminOnAdmin      = errors.New("Admins cannot modify other Admins")
	ErrAssignSuperAdmin  = errors.New("Cannot assign SuperAdmin role")
	ErrAdminAssignsAdmin = errors.New("Admin cannot assign admin roles")
	ErrDeleteSuperAdmin  = errors.New("Cannot delete SuperAdmin users")
	ErrDeleteSelf        = errors.New("Cannot delete yourself")
	ErrAdminDeletesAdmin = errors.New("Admins cannot delete other Admins")
	ErrAdminCreatesAdmin = errors.New("Admin cannot create admin users")
	ErrCreateSuperAdmin  = errors.New("Cannot create SuperAdmin users")
)

// ChangeRoleCheck validates a role change of target (current role targetRole)
// to newRole, requested by actor. The checks run in a fixed order so the error
// surfaced for a given request is stable: SuperAdmin protection, then
// admin-on-admin (self distinguished from other), then grant restrictions,
// then the self-change guard. A nil return means the change may be applied.
func ChangeRoleCheck(actorRole Role, actorID uint, targetRole Role, targetID uint, newRole Role) error {
	if targetRole == RoleSuperAdmin {
		return ErrTargetSuperAdmin
	}
	if actorRole == RoleAdmin && targetRole == RoleAdmin {
		if actorID == targetID {
			return ErrOwnRole
		}
		return ErrAdminOnAdmin
	}
	if newRole == RoleSuperAdmin {
		return ErrAssignSuperAdmin
	}
	if actorRole == RoleAdmin && (newRole == RoleAdmin || newRole == RoleSuperAdmin) {
		return ErrAdminAssignsAdmin
	}
	if actorID == targetID {
		return ErrOwnRole
	}
	return nil
}

// DeleteCheck validates deletion of target by actor, with the same precedence
// as ChangeRoleCheck.
func DeleteCheck(actorRole Role, actorID uint, targetRole Role, targetID uint) error {
	if targetRole == RoleSuperAdmin {
		return ErrDeleteSuperAdmin
	}
	if actorRole == RoleAdmin && targetRole == RoleAdmin {
		if actorID == targetID {
			return ErrDeleteSelf
		}
		return ErrAdminDeletesAdmin
	}
	if actorID == targetID {
		return ErrDeleteSelf
	}
	return nil
}

// CreateRoleCheck validates the role an admin gives to a newly created user.
func CreateRoleCheck(actorRole, newRole Role) error {
	if newRole == RoleSuperAdmin {
		return ErrCreateSuperAdmin
	}
	if actorRole == RoleAdmin && newRole == RoleAdmin {
		return ErrAdminCreatesAdmin
	}
	return nil
}

// AssignableRoles returns the roles the given actor may hand out: everything
// ranked strictly below their own role. Only Admin and SuperAdmin assign roles
// at all; anyone else gets nothing.
func AssignableRoles(actor Role) []Role {
	if actor != RoleAdmin && actor != RoleSuperAdmin {
		return []Role{}
	}
	roles := make([]Role, 0, len(ValidRoles)-1)
	for _, r := range ValidRoles {
		if r.Rank() < actor.Rank() {
			roles = append(roles, r)
		}
	}
	return roles
}
