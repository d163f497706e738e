package services

import (
	"strings"

	"scholarstream/internal/shared/identity"
)

// RoleAllowed reports whether role is one of allowed.
func RoleAllowed(role identity.Role, allowed ...identity.Role) bool {
	for _, candidate := range allowed {
		if role == candidate {
			return true
		}
	}
	return false
}

// OwnsEmail compares the caller email with a stored owner email, case-insensitively.
func OwnsEmail(caller identity.Identity, ownerEmail string) bool {
	owner := strings.TrimSpace(ownerEmail)
	if owner == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(caller.Email), owner)
}
