package commands

import (
	"context"
	"log/slog"
	"strings"

	application "scholarstream/contexts/identity-access/authorization-service/application"
	domainerrors "scholarstream/contexts/identity-access/authorization-service/domain/errors"
	"scholarstream/contexts/identity-access/authorization-service/ports"
	"scholarstream/internal/shared/identity"
)

type DeleteAccountCommand struct {
	Caller    identity.Identity
	AccountID string
}

// DeleteAccountUseCase removes a non-admin account. Admin accounts are never deleted.
type DeleteAccountUseCase struct {
	Policy     application.Policy
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u DeleteAccountUseCase) Execute(ctx context.Context, cmd DeleteAccountCommand) error {
	if err := u.Policy.RequireRole(ctx, cmd.Caller, identity.RoleAdmin); err != nil {
		return err
	}
	accountID := strings.TrimSpace(cmd.AccountID)
	if accountID == "" {
		return domainerrors.ErrInvalidInput
	}

	logger := application.ResolveLogger(u.Logger)
	if err := u.Repository.DeleteNonAdminAccount(ctx, accountID); err != nil {
		logger.Warn("account deletion refused",
			"event", "authz_account_delete_failed",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"account_id", accountID,
			"admin_id", cmd.Caller.UserID,
			"error", err.Error(),
		)
		return err
	}
	logger.Info("account deleted",
		"event", "authz_account_deleted",
		"module", "identity-access/authorization-service",
		"layer", "application",
		"account_id", accountID,
		"admin_id", cmd.Caller.UserID,
	)
	return nil
}
