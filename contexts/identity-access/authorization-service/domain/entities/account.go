package entities

import (
	"time"

	"scholarstream/internal/shared/identity"
)

// Account is a registered platform user. AccountID equals the identity
// provider subject; Email is unique and stored lower-case.
type Account struct {
	AccountID string
	Email     string
	Name      string
	PhotoURL  string
	Role      identity.Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Account) IsAdmin() bool {
	return a.Role == identity.RoleAdmin
}
