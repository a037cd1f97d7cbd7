package models

// Role is the closed set of back-office roles. Permission code switches
// exhaustively over these values; anything outside the set is treated as
// RoleUnknown and denied.
type Role string

const (
	// RolePrincipalAdmin is the bootstrap administrator. It cannot be
	// assigned, deleted, or edited by anyone else.
	RolePrincipalAdmin Role = "principal_admin"
	// RoleAdmin manages all properties and may manage collaborators.
	RoleAdmin Role = "admin"
	// RoleCollaborator manages only the properties it created.
	RoleCollaborator Role = "collaborator"
	// RoleUnknown is any unrecognized role value. Least privilege.
	RoleUnknown Role = ""
)

// ParseRole converts a stored role string to a Role.
// Unknown or empty values map to RoleUnknown.
func ParseRole(s string) Role {
	switch Role(s) {
	case RolePrincipalAdmin:
		return RolePrincipalAdmin
	case RoleAdmin:
		return RoleAdmin
	case RoleCollaborator:
		return RoleCollaborator
	default:
		return RoleUnknown
	}
}

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RolePrincipalAdmin, RoleAdmin, RoleCollaborator:
		return true
	default:
		return false
	}
}

// AdminTier reports whether r has site-wide administrative reach
// (all properties visible, user management available).
func (r Role) AdminTier() bool {
	return r == RolePrincipalAdmin || r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}
