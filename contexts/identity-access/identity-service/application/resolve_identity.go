package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	domainerrors "scholarstream/contexts/identity-access/identity-service/domain/errors"
	"scholarstream/contexts/identity-access/identity-service/ports"
	"scholarstream/internal/shared/identity"
)

// ResolveIdentityUseCase extracts the bearer credential from an Authorization
// header value and verifies it.
type ResolveIdentityUseCase struct {
	Verifier ports.TokenVerifier
	Logger   *slog.Logger
}

// Execute returns ErrUnauthenticated (wrapped) for any missing or rejected credential.
func (u ResolveIdentityUseCase) Execute(ctx context.Context, authorizationHeader string) (identity.Identity, error) {
	token, err := bearerToken(authorizationHeader)
	if err != nil {
		return identity.Identity{}, err
	}
	if u.Verifier == nil {
		return identity.Identity{}, fmt.Errorf("%w: %w", domainerrors.ErrUnauthenticated, domainerrors.ErrVerifierMisconfigured)
	}

	caller, err := u.Verifier.Verify(ctx, token)
	if err != nil {
		ResolveLogger(u.Logger).Warn("credential rejected",
			"event", "identity_credential_rejected",
			"module", "identity-access/identity-service",
			"layer", "application",
			"error", err.Error(),
		)
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			return identity.Identity{}, err
		}
		return identity.Identity{}, fmt.Errorf("%w: %w", domainerrors.ErrUnauthenticated, err)
	}
	caller.Email = identity.NormalizeEmail(caller.Email)
	if caller.IsZero() {
		return identity.Identity{}, fmt.Errorf("%w: %w", domainerrors.ErrUnauthenticated, domainerrors.ErrInvalidCredential)
	}
	return caller, nil
}

func bearerToken(header string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", fmt.Errorf("%w: %w", domainerrors.ErrUnauthenticated, domainerrors.ErrMissingCredential)
	}
	return strings.TrimSpace(parts[1]), nil
}
