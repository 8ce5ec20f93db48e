package auth

import "errors"

// Roles
const (
	RoleMember      = "member"
	RoleClubManager = "clubManager"
	RoleAdmin       = "admin"
)

// Permissions maps a role to the capabilities it grants. Route protection
// is a single capability check against the resolved identity instead of
// per-route role comparisons.
var Permissions = map[string][]string{
	RoleAdmin: {
		"clubs:read",
		"clubs:create",
		"clubs:approve",
		"events:read",
		"events:create",
		"payments:initiate",
		"payments:confirm",
		"payments:read:any",
		"members:read:self",
	},
	RoleClubManager: {
		"clubs:read",
		"clubs:create",
		"events:read",
		"events:create",
		"payments:initiate",
		"payments:confirm",
		"members:read:self",
	},
	RoleMember: {
		"clubs:read",
		"events:read",
		"payments:initiate",
		"payments:confirm",
		"members:read:self",
	},
}

// HasPermission reports whether the role grants the capability.
func HasPermission(role, permission string) bool {
	permissions, exists := Permissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// CanPerformAction reports whether the identity may perform the action.
func CanPerformAction(claims *Claims, permission string) bool {
	return HasPermission(claims.Role, permission)
}

func IsAdmin(claims *Claims) bool {
	return claims.Role == RoleAdmin
}

// ValidateRole checks that role is one of the known roles.
func ValidateRole(role string) error {
	switch role {
	case RoleMember, RoleClubManager, RoleAdmin:
		return nil
	default:
		return errors.New("invalid role")
	}
}
