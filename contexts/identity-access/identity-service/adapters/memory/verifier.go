package memory

import (
	"context"
	"strings"
	"sync"

	domainerrors "scholarstream/contexts/identity-access/identity-service/domain/errors"
	"scholarstream/internal/shared/identity"
)

// Verifier resolves tokens from a static table. Used by tests and local runs.
type Verifier struct {
	mu     sync.RWMutex
	tokens map[string]identity.Identity
}

func NewVerifier(tokens map[string]identity.Identity) *Verifier {
	items := make(map[string]identity.Identity, len(tokens))
	for token, caller := range tokens {
		items[token] = caller
	}
	return &Verifier{tokens: items}
}

func (v *Verifier) Register(token string, caller identity.Identity) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tokens[token] = caller
}

func (v *Verifier) Verify(_ context.Context, token string) (identity.Identity, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	caller, ok := v.tokens[strings.TrimSpace(token)]
	if !ok {
		return identity.Identity{}, domainerrors.ErrUnauthenticated
	}
	return caller, nil
}
