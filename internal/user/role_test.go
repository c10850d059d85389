package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeRoleCheck_TargetSuperAdminAlwaysProtected(t *testing.T) {
	for _, actor := range []Role{RoleAdmin, RoleSuperAdmin} {
		err := ChangeRoleCheck(actor, 1, RoleSuperAdmin, 2, RoleUser)
		assert.ErrorIs(t, err, ErrTargetSuperAdmin, "actor %s", actor)
	}
}

func TestChangeRoleCheck_AdminOnAdmin(t *testing.T) {
	// Admin editing another Admin
	err := ChangeRoleCheck(RoleAdmin, 1, RoleAdmin, 2, RoleUser)
	assert.ErrorIs(t, err, ErrAdminOnAdmin)

	// Admin editing themselves gets the self-change message, not the
	// admin-on-admin one
	err = ChangeRoleCheck(RoleAdmin, 5, RoleAdmin, 5, RoleModerator)
	assert.ErrorIs(t, err, ErrOwnRole)
}

func TestChangeRoleCheck_NobodyGrantsSuperAdmin(t *testing.T) {
	err := ChangeRoleCheck(RoleSuperAdmin, 1, RoleUser, 2, RoleSuperAdmin)
	assert.ErrorIs(t, err, ErrAssignSuperAdmin)

	err = ChangeRoleCheck(RoleAdmin, 1, RoleUser, 2, RoleSuperAdmin)
	assert.ErrorIs(t, err, ErrAssignSuperAdmin)
}

func TestChangeRoleCheck_AdminCannotGrantAdmin(t *testing.T) {
	err := ChangeRoleCheck(RoleAdmin, 1, RoleUser, 2, RoleAdmin)
	assert.ErrorIs(t, err, ErrAdminAssignsAdmin)

	// SuperAdmin may grant Admin
	assert.NoError(t, ChangeRoleCheck(RoleSuperAdmin, 1, RoleUser, 2, RoleAdmin))
}

func TestChangeRoleCheck_SelfChangeForbidden(t *testing.T) {
	err := ChangeRoleCheck(RoleSuperAdmin, 7, RoleUser, 7, RolePlayer)
	assert.ErrorIs(t, err, ErrOwnRole)
}

func TestChangeRoleCheck_Allowed(t *testing.T) {
	cases := []struct {
		name    string
		actor   Role
		target  Role
		newRole Role
	}{
		{"admin promotes user to player", RoleAdmin, RoleUser, RolePlayer},
		{"admin promotes player to moderator", RoleAdmin, RolePlayer, RoleModerator},
		{"superadmin demotes admin", RoleSuperAdmin, RoleAdmin, RoleUser},
		{"superadmin promotes rep to admin", RoleSuperAdmin, RoleCollegeRep, RoleAdmin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, ChangeRoleCheck(tc.actor, 1, tc.target, 2, tc.newRole))
		})
	}
}

func TestDeleteCheck(t *testing.T) {
	assert.ErrorIs(t, DeleteCheck(RoleSuperAdmin, 1, RoleSuperAdmin, 2), ErrDeleteSuperAdmin)
	assert.ErrorIs(t, DeleteCheck(RoleAdmin, 1, RoleAdmin, 2), ErrAdminDeletesAdmin)
	assert.ErrorIs(t, DeleteCheck(RoleAdmin, 5, RoleAdmin, 5), ErrDeleteSelf)
	assert.ErrorIs(t, DeleteCheck(RoleSuperAdmin, 9, RoleSuperAdmin, 9), ErrDeleteSuperAdmin)
	assert.ErrorIs(t, DeleteCheck(RoleAdmin, 3, RoleUser, 3), ErrDeleteSelf)
	assert.NoError(t, DeleteCheck(RoleAdmin, 1, RolePlayer, 2))
	assert.NoError(t, DeleteCheck(RoleSuperAdmin, 1, RoleAdmin, 2))
}

func TestCreateRoleCheck(t *testing.T) {
	assert.ErrorIs(t, CreateRoleCheck(RoleSuperAdmin, RoleSuperAdmin), ErrCreateSuperAdmin)
	assert.ErrorIs(t, CreateRoleCheck(RoleAdmin, RoleSuperAdmin), ErrCreateSuperAdmin)
	assert.ErrorIs(t, CreateRoleCheck(RoleAdmin, RoleAdmin), ErrAdminCreatesAdmin)
	assert.NoError(t, CreateRoleCheck(RoleSuperAdmin, RoleAdmin))
	assert.NoError(t, CreateRoleCheck(RoleAdmin, RoleModerator))
}

func TestAssignableRoles(t *testing.T) {
	super := AssignableRoles(RoleSuperAdmin)
	assert.ElementsMatch(t, []Role{RoleUser, RolePlayer, RoleCollegeRep, RoleModerator, RoleAdmin}, super)

	admin := AssignableRoles(RoleAdmin)
	assert.ElementsMatch(t, []Role{RoleUser, RolePlayer, RoleCollegeRep, RoleModerator}, admin)

	assert.Empty(t, AssignableRoles(RoleModerator))
	assert.Empty(t, AssignableRoles(RoleUser))
}

func TestRoleValidAndRank(t *testing.T) {
	for _, r := range ValidRoles {
		assert.True(t, r.Valid())
	}
	assert.False(t, Role("Wizard").Valid())
	assert.Equal(t, -1, Role("Wizard").Rank())

	// ranks are strictly increasing with privilege
	for i := 1; i < len(ValidRoles); i++ {
		assert.Greater(t, ValidRoles[i].Rank(), ValidRoles[i-1].Rank())
	}
}
