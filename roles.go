package freeconnect

import "strings"

// Role identifies what a user is allowed to do in the marketplace. The
// backend transmits roles as strings; ParseRole is the only sanctioned way
// to turn one of those strings into a Role.
type Role string

const (
	// RoleClient posts projects and hires freelancers.
	RoleClient Role = "client"
	// RoleFreelancer browses projects and submits proposals.
	RoleFreelancer Role = "freelancer"
	// RoleAdmin manages users and platform-wide settings.
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is one of the predefined valid roles
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleFreelancer, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// GetAllRoles returns all predefined roles
func GetAllRoles() []Role {
	return []Role{
		RoleClient,
		RoleFreelancer,
		RoleAdmin,
	}
}

// ParseRole safely parses a string into a Role. Unrecognized values are
// rejected rather than propagated into guard checks.
func ParseRole(roleStr string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(roleStr)))
	return role, role.IsValid()
}
