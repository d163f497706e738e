package identityservice

import (
	"log/slog"

	"scholarstream/contexts/identity-access/identity-service/adapters/memory"
	"scholarstream/contexts/identity-access/identity-service/application"
	"scholarstream/contexts/identity-access/identity-service/ports"
	"scholarstream/internal/shared/identity"
)

// Module exposes identity resolution to the HTTP server.
type Module struct {
	Resolve  application.ResolveIdentityUseCase
	Verifier *memory.Verifier
}

type Dependencies struct {
	Verifier ports.TokenVerifier
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Resolve: application.ResolveIdentityUseCase{
			Verifier: deps.Verifier,
			Logger:   deps.Logger,
		},
	}
}

// NewInMemoryModule builds a module backed by a static token table.
func NewInMemoryModule(tokens map[string]identity.Identity, logger *slog.Logger) Module {
	verifier := memory.NewVerifier(tokens)
	module := NewModule(Dependencies{Verifier: verifier, Logger: logger})
	module.Verifier = verifier
	return module
}
