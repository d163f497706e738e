package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainerrors "scholarstream/contexts/identity-access/authorization-service/domain/errors"
	"scholarstream/contexts/identity-access/authorization-service/domain/services"
	"scholarstream/contexts/identity-access/authorization-service/ports"
	"scholarstream/internal/shared/identity"
)

// Policy answers "may this identity do this?" for every context.
// Each role check performs exactly one account lookup.
type Policy struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

// RequireRole succeeds when the caller's stored account role is one of roles.
func (p Policy) RequireRole(ctx context.Context, caller identity.Identity, roles ...identity.Role) error {
	if caller.IsZero() {
		return domainerrors.ErrUnauthenticated
	}

	account, err := p.Repository.GetAccountByEmail(ctx, caller.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			p.deny(caller, "account_not_found", roles)
			return domainerrors.ErrForbidden
		}
		return fmt.Errorf("lookup caller account: %w", err)
	}
	if !services.RoleAllowed(account.Role, roles...) {
		p.deny(caller, "role_not_allowed", roles)
		return domainerrors.ErrForbidden
	}
	return nil
}

// RequireOwnership succeeds when the caller email matches ownerEmail.
func (p Policy) RequireOwnership(_ context.Context, caller identity.Identity, ownerEmail string) error {
	if caller.IsZero() {
		return domainerrors.ErrUnauthenticated
	}
	if !services.OwnsEmail(caller, ownerEmail) {
		ResolveLogger(p.Logger).Warn("ownership check denied",
			"event", "authz_ownership_denied",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"user_id", caller.UserID,
		)
		return domainerrors.ErrForbidden
	}
	return nil
}

// RequireOwnerOrRole lets owners through without a lookup and falls back to RequireRole.
func (p Policy) RequireOwnerOrRole(ctx context.Context, caller identity.Identity, ownerEmail string, roles ...identity.Role) error {
	if caller.IsZero() {
		return domainerrors.ErrUnauthenticated
	}
	if services.OwnsEmail(caller, ownerEmail) {
		return nil
	}
	return p.RequireRole(ctx, caller, roles...)
}

func (p Policy) deny(caller identity.Identity, reason string, roles []identity.Role) {
	ResolveLogger(p.Logger).Warn("role check denied",
		"event", "authz_role_denied",
		"module", "identity-access/authorization-service",
		"layer", "application",
		"user_id", caller.UserID,
		"reason", reason,
		"required_roles", roles,
	)
}
