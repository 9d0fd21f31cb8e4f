// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin indicates an administrator who manages users and shops.
	RoleAdmin Role = "admin"
	// RoleShopkeeper indicates the owner of a print shop.
	RoleShopkeeper Role = "shopkeeper"
	// RoleUser indicates a regular customer placing print orders.
	RoleUser Role = "user"
	// RoleUnknown is the resolution result for a principal without any determinable role.
	// It is never stored.
	RoleUnknown Role = "unknown"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is one of the assignable roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleShopkeeper, RoleUser:
		return true
	default:
		return false
	}
}

// Ptr returns a pointer to a copy of the role.
func (r Role) Ptr() *Role {
	return &r
}

// ParseRole converts a string to an assignable Role.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", false
	}

	return role, true
}
