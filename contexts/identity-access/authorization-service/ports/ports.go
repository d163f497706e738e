package ports

import (
	"context"
	"time"

	"scholarstream/contexts/identity-access/authorization-service/domain/entities"
	"scholarstream/internal/shared/identity"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// Repository is the persistence boundary for accounts.
type Repository interface {
	// InsertAccountIfAbsent stores account unless its email already exists.
	// It returns the stored account and whether this call created it.
	InsertAccountIfAbsent(ctx context.Context, account entities.Account) (entities.Account, bool, error)
	GetAccount(ctx context.Context, accountID string) (entities.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (entities.Account, error)
	UpdateRole(ctx context.Context, accountID string, role identity.Role, updatedAt time.Time) (entities.Account, error)
	// DeleteNonAdminAccount removes the account only when its stored role is not admin.
	DeleteNonAdminAccount(ctx context.Context, accountID string) error
}
