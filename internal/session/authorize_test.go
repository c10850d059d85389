package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rpatel-116/uniclash/internal/role"
)

func TestAuthorizeNilSession(t *testing.T) {
	err := Authorize(nil, role.RoleAdmin)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthorizeRoleInSet(t *testing.T) {
	s := &Session{UserID: 1, Role: role.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}
	assert.NoError(t, Authorize(s, role.RoleSuperAdmin, role.RoleAdmin))
}

func TestAuthorizeRoleOutsideSet(t *testing.T) {
	s := &Session{UserID: 1, Role: role.RolePlayer, ExpiresAt: time.Now().Add(time.Hour)}
	err := Authorize(s, role.RoleSuperAdmin, role.RoleAdmin)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAuthorizeEmptyPermittedSet(t *testing.T) {
	s := &Session{UserID: 1, Role: role.RoleSuperAdmin}
	assert.ErrorIs(t, Authorize(s), ErrForbidden)
}
