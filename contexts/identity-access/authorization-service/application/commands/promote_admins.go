package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	application "scholarstream/contexts/identity-access/authorization-service/application"
	"scholarstream/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "scholarstream/contexts/identity-access/authorization-service/domain/errors"
	"scholarstream/contexts/identity-access/authorization-service/ports"
	"scholarstream/internal/shared/identity"
)

// AdminEmails are the accounts that always hold the admin role.
type AdminEmails []string

func NewAdminEmails(emails []string) AdminEmails {
	seen := make(map[string]struct{}, len(emails))
	out := make(AdminEmails, 0, len(emails))
	for _, email := range emails {
		normalized := identity.NormalizeEmail(email)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

func (a AdminEmails) Contains(email string) bool {
	normalized := identity.NormalizeEmail(email)
	for _, item := range a {
		if item == normalized {
			return true
		}
	}
	return false
}

// PromoteAdminsUseCase grants the admin role to listed accounts that already
// exist. Listed emails without an account become admin when they register.
type PromoteAdminsUseCase struct {
	Emails     AdminEmails
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u PromoteAdminsUseCase) Execute(ctx context.Context) (int, error) {
	promoted := 0
	for _, email := range u.Emails {
		account, err := u.Repository.GetAccountByEmail(ctx, email)
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			application.ResolveLogger(u.Logger).Info("admin email has no account yet",
				"event", "authz_admin_pending_registration",
				"module", "identity-access/authorization-service",
				"layer", "application",
				"email", email,
			)
			continue
		}
		if err != nil {
			return promoted, err
		}
		changed, err := promoteToAdmin(ctx, u.Repository, u.now(), u.Logger, account)
		if err != nil {
			return promoted, err
		}
		if changed {
			promoted++
		}
	}
	return promoted, nil
}

func (u PromoteAdminsUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}

func promoteToAdmin(
	ctx context.Context,
	repository ports.Repository,
	now time.Time,
	logger *slog.Logger,
	account entities.Account,
) (bool, error) {
	if account.IsAdmin() {
		return false, nil
	}
	if _, err := repository.UpdateRole(ctx, account.AccountID, identity.RoleAdmin, now); err != nil {
		return false, err
	}
	application.ResolveLogger(logger).Info("account promoted to admin",
		"event", "authz_admin_promoted",
		"module", "identity-access/authorization-service",
		"layer", "application",
		"account_id", account.AccountID,
		"previous_role", string(account.Role),
	)
	return true, nil
}
