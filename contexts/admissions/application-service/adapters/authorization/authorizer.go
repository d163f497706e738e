package authorization

import (
	"context"
	"errors"
	"log/slog"

	authzerrors "scholarstream/contexts/identity-access/authorization-service/domain/errors"
	"scholarstream/internal/shared/identity"

	application "scholarstream/contexts/admissions/application-service/application"
	domainerrors "scholarstream/contexts/admissions/application-service/domain/errors"
)

// Policy is the authorization-service policy surface this context relies on.
type Policy interface {
	RequireRole(ctx context.Context, caller identity.Identity, roles ...identity.Role) error
	RequireOwnership(ctx context.Context, caller identity.Identity, ownerEmail string) error
}

// Authorizer adapts policy decisions into this context's error taxonomy.
// Lookup failures are logged here and surface as ErrUpstreamFailure.
type Authorizer struct {
	Policy Policy
	Logger *slog.Logger
}

func (a Authorizer) RequireRole(ctx context.Context, caller identity.Identity, roles ...identity.Role) error {
	return a.translate("require_role", a.Policy.RequireRole(ctx, caller, roles...))
}

func (a Authorizer) RequireOwnership(ctx context.Context, caller identity.Identity, ownerEmail string) error {
	return a.translate("require_ownership", a.Policy.RequireOwnership(ctx, caller, ownerEmail))
}

func (a Authorizer) translate(operation string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, authzerrors.ErrUnauthenticated):
		return domainerrors.ErrUnauthenticated
	case errors.Is(err, authzerrors.ErrForbidden):
		return domainerrors.ErrForbidden
	default:
		return application.UpstreamFailure(a.Logger, operation, "authorization_lookup", err)
	}
}
