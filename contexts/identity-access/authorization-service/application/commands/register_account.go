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

const accountExistsMessage = "account already exists"

type RegisterAccountCommand struct {
	Caller   identity.Identity
	Name     string
	PhotoURL string
}

type RegisterAccountResult struct {
	Account entities.Account
	Created bool
	Message string
}

// RegisterAccountUseCase creates the caller's account once; repeats are no-ops.
// Emails in Admins register as admin, and an existing account on the list is
// promoted on its next registration call.
type RegisterAccountUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Admins     AdminEmails
	Logger     *slog.Logger
}

func (u RegisterAccountUseCase) Execute(ctx context.Context, cmd RegisterAccountCommand) (RegisterAccountResult, error) {
	if cmd.Caller.IsZero() {
		return RegisterAccountResult{}, domainerrors.ErrUnauthenticated
	}
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return RegisterAccountResult{}, domainerrors.ErrInvalidInput
	}

	now := u.now()
	role := identity.RoleStudent
	listedAdmin := u.Admins.Contains(cmd.Caller.Email)
	if listedAdmin {
		role = identity.RoleAdmin
	}
	account, created, err := u.Repository.InsertAccountIfAbsent(ctx, entities.Account{
		AccountID: strings.TrimSpace(cmd.Caller.UserID),
		Email:     identity.NormalizeEmail(cmd.Caller.Email),
		Name:      name,
		PhotoURL:  strings.TrimSpace(cmd.PhotoURL),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return RegisterAccountResult{}, err
	}

	logger := application.ResolveLogger(u.Logger)
	if !created && listedAdmin && !account.IsAdmin() {
		if _, err := promoteToAdmin(ctx, u.Repository, now, u.Logger, account); err != nil {
			return RegisterAccountResult{}, err
		}
		account.Role = identity.RoleAdmin
		account.UpdatedAt = now
	}
	if !created {
		logger.Info("account registration replayed",
			"event", "authz_account_exists",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"account_id", account.AccountID,
		)
		return RegisterAccountResult{Account: account, Message: accountExistsMessage}, nil
	}
	logger.Info("account registered",
		"event", "authz_account_registered",
		"module", "identity-access/authorization-service",
		"layer", "application",
		"account_id", account.AccountID,
	)
	return RegisterAccountResult{Account: account, Created: true}, nil
}

func (u RegisterAccountUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
