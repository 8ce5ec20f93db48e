package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleMember, "payments:confirm"))
	assert.True(t, HasPermission(RoleClubManager, "clubs:create"))
	assert.True(t, HasPermission(RoleAdmin, "clubs:approve"))

	assert.False(t, HasPermission(RoleMember, "clubs:create"))
	assert.False(t, HasPermission(RoleMember, "clubs:approve"))
	assert.False(t, HasPermission(RoleClubManager, "clubs:approve"))
	assert.False(t, HasPermission(RoleClubManager, "payments:read:any"))
	assert.False(t, HasPermission("unknown", "clubs:read"))
}

func TestCanPerformAction(t *testing.T) {
	member := &Claims{Sub: "u1", Email: "a@test.dev", Role: RoleMember}
	admin := &Claims{Sub: "u2", Email: "b@test.dev", Role: RoleAdmin}

	assert.True(t, CanPerformAction(member, "events:read"))
	assert.False(t, CanPerformAction(member, "events:create"))
	assert.True(t, CanPerformAction(admin, "payments:read:any"))

	assert.False(t, IsAdmin(member))
	assert.True(t, IsAdmin(admin))
}

func TestValidateRole(t *testing.T) {
	assert.NoError(t, ValidateRole(RoleMember))
	assert.NoError(t, ValidateRole(RoleClubManager))
	assert.NoError(t, ValidateRole(RoleAdmin))
	assert.Error(t, ValidateRole("superuser"))
}
