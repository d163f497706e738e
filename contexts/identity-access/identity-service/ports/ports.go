package ports

import (
	"context"

	"scholarstream/internal/shared/identity"
)

// TokenVerifier validates a raw bearer credential and returns the identity it proves.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (identity.Identity, error)
}
