package queries

import (
	"context"
	"log/slog"

	application "scholarstream/contexts/identity-access/authorization-service/application"
	domainerrors "scholarstream/contexts/identity-access/authorization-service/domain/errors"
	"scholarstream/contexts/identity-access/authorization-service/ports"
	"scholarstream/internal/shared/identity"
)

type GetRoleQuery struct {
	Caller identity.Identity
	Email  string
}

// GetRoleUseCase returns the stored role for an email. Owners and admins only.
type GetRoleUseCase struct {
	Policy     application.Policy
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u GetRoleUseCase) Execute(ctx context.Context, query GetRoleQuery) (identity.Role, error) {
	email := identity.NormalizeEmail(query.Email)
	if email == "" {
		return "", domainerrors.ErrInvalidInput
	}
	if err := u.Policy.RequireOwnerOrRole(ctx, query.Caller, email, identity.RoleAdmin); err != nil {
		return "", err
	}

	account, err := u.Repository.GetAccountByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	application.ResolveLogger(u.Logger).Debug("account role read",
		"event", "authz_role_read",
		"module", "identity-access/authorization-service",
		"layer", "application",
		"account_id", account.AccountID,
	)
	return account.Role, nil
}
