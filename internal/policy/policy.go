// Package policy holds the role permission rules for the back office.
// Every function is a total, pure decision over (actor, target): a nil
// actor or an unrecognized role always denies, and nothing here mutates
// state or panics. Callers surface denials as recoverable notices.
package policy

import (
	"github.com/imovia/api/internal/models"
)

// CanEditProperty reports whether actor may modify the given property.
// Admin-tier roles edit everything; a collaborator edits only listings
// it created.
func CanEditProperty(actor *models.User, p models.Property) bool {
	if actor == nil {
		return false
	}
	switch actor.Role {
	case models.RolePrincipalAdmin, models.RoleAdmin:
		return true
	case models.RoleCollaborator:
		return p.UserID != "" && p.UserID == actor.ID
	default:
		return false
	}
}

// CanDeleteProperty follows the same rule as CanEditProperty.
func CanDeleteProperty(actor *models.User, p models.Property) bool {
	return CanEditProperty(actor, p)
}

// CanToggleFeatured reports whether actor may flip the featured flag.
// Same ownership rule as editing.
func CanToggleFeatured(actor *models.User, p models.Property) bool {
	return CanEditProperty(actor, p)
}

// CanViewAllProperties reports whether the administrative listing shows
// actor every property rather than only its own.
func CanViewAllProperties(actor *models.User) bool {
	if actor == nil {
		return false
	}
	return actor.Role.AdminTier()
}

// CanManageUsers gates the whole user-management surface. Collaborators
// and anonymous callers never reach it.
func CanManageUsers(actor *models.User) bool {
	if actor == nil {
		return false
	}
	return actor.Role.AdminTier()
}

// CanEditSiteSettings reports whether actor may replace the site-wide
// presentation settings. Reserved for the principal admin.
func CanEditSiteSettings(actor *models.User) bool {
	if actor == nil {
		return false
	}
	return actor.Role == models.RolePrincipalAdmin
}

// CanDeleteUser applies the deletion matrix: the principal admin is never
// deletable, the principal admin deletes anyone else, and an admin deletes
// collaborators only.
func CanDeleteUser(actor *models.User, target models.User) bool {
	if target.Role == models.RolePrincipalAdmin {
		return false
	}
	if actor == nil {
		return false
	}
	switch actor.Role {
	case models.RolePrincipalAdmin:
		return true
	case models.RoleAdmin:
		return target.Role == models.RoleCollaborator
	default:
		return false
	}
}

// CanEditUser applies the edit matrix. Self-edit is always allowed,
// including a password change. Beyond that, nobody edits another
// principal admin, the principal admin edits anyone, and an admin edits
// admins and collaborators.
func CanEditUser(actor *models.User, target models.User) bool {
	if actor == nil {
		return false
	}
	if actor.ID == target.ID {
		return true
	}
	if target.Role == models.RolePrincipalAdmin {
		return false
	}
	switch actor.Role {
	case models.RolePrincipalAdmin:
		return true
	case models.RoleAdmin:
		return target.Role == models.RoleAdmin || target.Role == models.RoleCollaborator
	default:
		return false
	}
}

// AssignableRoles lists the roles actor may hand out when creating or
// editing a user. Nobody assigns principal_admin through this path.
func AssignableRoles(actor *models.User) []models.Role {
	if actor == nil {
		return nil
	}
	switch actor.Role {
	case models.RolePrincipalAdmin:
		return []models.Role{models.RoleAdmin, models.RoleCollaborator}
	case models.RoleAdmin:
		return []models.Role{models.RoleCollaborator}
	default:
		return nil
	}
}

// CanAssignRole reports whether actor may set the given role on a user
// record it is creating or editing.
func CanAssignRole(actor *models.User, role models.Role) bool {
	for _, r := range AssignableRoles(actor) {
		if r == role {
			return true
		}
	}
	return false
}

// FormCapabilities tells the user form which controls to enable instead
// of leaving the decision to scattered conditionals in the UI layer.
type FormCapabilities struct {
	AssignableRoles  []models.Role `json:"assignableRoles"`
	CanEditRoleField bool          `json:"canEditRoleField"`
}

// UserFormCapabilities computes the capability set for actor working on
// target. A nil target means the create form. The role field unlocks only
// for a principal admin, and never on a principal-admin target: admins
// have a single assignable role, and the principal role is immutable.
func UserFormCapabilities(actor *models.User, target *models.User) FormCapabilities {
	caps := FormCapabilities{
		AssignableRoles: AssignableRoles(actor),
	}
	if actor == nil {
		return caps
	}
	if target != nil && target.Role == models.RolePrincipalAdmin {
		return caps
	}
	caps.CanEditRoleField = actor.Role == models.RolePrincipalAdmin
	return caps
}
