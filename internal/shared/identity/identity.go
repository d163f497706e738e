package identity

import "strings"

// Identity is the verified caller produced by the identity verifier.
// Shared across contexts so ports can exchange it without importing adapters.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Role is the stored account role consulted by the authorization policy.
type Role string

const (
	RoleStudent   Role = "student"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleStudent:
		return RoleStudent, true
	case RoleModerator:
		return RoleModerator, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

func (i Identity) IsZero() bool {
	return strings.TrimSpace(i.UserID) == "" || strings.TrimSpace(i.Email) == ""
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
