package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "scholarstream/contexts/identity-access/authorization-service/application"
	"scholarstream/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "scholarstream/contexts/identity-access/authorization-service/domain/errors"
	"scholarstream/contexts/identity-access/authorization-service/ports"
	"scholarstream/internal/shared/identity"
)

type UpdateRoleCommand struct {
	Caller    identity.Identity
	AccountID string
	Role      string
}

// UpdateRoleUseCase lets admins change another account's role.
type UpdateRoleUseCase struct {
	Policy     application.Policy
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u UpdateRoleUseCase) Execute(ctx context.Context, cmd UpdateRoleCommand) (entities.Account, error) {
	if err := u.Policy.RequireRole(ctx, cmd.Caller, identity.RoleAdmin); err != nil {
		return entities.Account{}, err
	}
	accountID := strings.TrimSpace(cmd.AccountID)
	if accountID == "" {
		return entities.Account{}, domainerrors.ErrInvalidInput
	}
	role, ok := identity.ParseRole(cmd.Role)
	if !ok {
		return entities.Account{}, domainerrors.ErrInvalidRole
	}

	now := time.Now().UTC()
	if u.Clock != nil {
		now = u.Clock.Now().UTC()
	}
	account, err := u.Repository.UpdateRole(ctx, accountID, role, now)
	if err != nil {
		return entities.Account{}, err
	}

	application.ResolveLogger(u.Logger).Info("account role updated",
		"event", "authz_role_updated",
		"module", "identity-access/authorization-service",
		"layer", "application",
		"account_id", account.AccountID,
		"role", string(account.Role),
		"admin_id", cmd.Caller.UserID,
	)
	return account, nil
}
