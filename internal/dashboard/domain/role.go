package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of user roles known to the platform
type Role string

const (
	RoleAdmin             Role = "ADMIN"
	RoleVeterinaryOfficer Role = "VETERINARY_OFFICER"
)

// AllRoles lists every role in declaration order. Chart output follows this order.
var AllRoles = []Role{RoleAdmin, RoleVeterinaryOfficer}

// Label returns the human readable role name used in charts
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleVeterinaryOfficer:
		return "Veterinary Officer"
	}
	panic(fmt.Sprintf("domain: unknown role %q", string(r)))
}

// Valid reports whether r is one of the declared roles
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRole parses a role code case-insensitively.
// An empty value means "no filter" and returns nil.
func ParseRole(value string) (*Role, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	role := Role(strings.ToUpper(value))
	if !role.Valid() {
		return nil, NewValidationError("role", value, "unknown role")
	}
	return &role, nil
}
