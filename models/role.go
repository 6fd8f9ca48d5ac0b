package models

// Role is the closed set of identity roles. "readers" is the wire value the
// existing clients send for the read-only role.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleUser   Role = "user"
	RoleReader Role = "readers"
)

// ParseRole maps a raw claim value onto the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleUser, RoleReader:
		return Role(s), true
	}
	return "", false
}

// Requirement is a per-route role requirement.
type Requirement int

const (
	// AnyAuthenticated admits every verified identity, readers included.
	AnyAuthenticated Requirement = iota
	// NotReader admits admins and standard users.
	NotReader
	// AdminOnly admits admins.
	AdminOnly
)

// Satisfies reports whether the role meets the requirement.
func (r Role) Satisfies(req Requirement) bool {
	switch req {
	case AnyAuthenticated:
		return true
	case NotReader:
		return r == RoleAdmin || r == RoleUser
	case AdminOnly:
		return r == RoleAdmin
	}
	return false
}
