// Package policy decides what a user may do with a project based on the
// project's resolved member list. The functions are pure: membership is the
// only input, so a creator who has been removed from the member list has no
// access at all, including delete.
package policy

import "github.com/taskflow-dev/taskflow-api/internal/models"

// RoleOf returns the user's role within the member list.
func RoleOf(members []models.ProjectMember, userID uint64) (models.ProjectRole, bool) {
	for _, m := range members {
		if m.UserID == userID {
			return m.Role, true
		}
	}
	return "", false
}

// CanRead reports whether the user may view the project. Every member may
// read regardless of role.
func CanRead(members []models.ProjectMember, userID uint64) bool {
	_, ok := RoleOf(members, userID)
	return ok
}

// CanWrite reports whether the user may modify the project. Owners and
// admins may write.
func CanWrite(members []models.ProjectMember, userID uint64) bool {
	role, ok := RoleOf(members, userID)
	return ok && (role == models.RoleOwner || role == models.RoleAdmin)
}

// CanDelete reports whether the user may delete the project. Only owners.
func CanDelete(members []models.ProjectMember, userID uint64) bool {
	role, ok := RoleOf(members, userID)
	return ok && role == models.RoleOwner
}

// HasOwner reports whether at least one owner remains in the member list.
func HasOwner(members []models.ProjectMember) bool {
	for _, m := range members {
		if m.Role == models.RoleOwner {
			return true
		}
	}
	return false
}
