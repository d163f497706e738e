package authorization

import (
	"log/slog"

	httpadapter "scholarstream/contexts/identity-access/authorization-service/adapters/http"
	"scholarstream/contexts/identity-access/authorization-service/adapters/memory"
	application "scholarstream/contexts/identity-access/authorization-service/application"
	"scholarstream/contexts/identity-access/authorization-service/application/commands"
	"scholarstream/contexts/identity-access/authorization-service/application/queries"
	"scholarstream/contexts/identity-access/authorization-service/ports"
)

// Module is the authorization-service composition root exposed to runtime wiring.
type Module struct {
	Handler       httpadapter.Handler
	Policy        application.Policy
	PromoteAdmins commands.PromoteAdminsUseCase
	Store         *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	Admins     commands.AdminEmails
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	policy := application.Policy{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}

	handler := httpadapter.Handler{
		Register: commands.RegisterAccountUseCase{
			Repository: deps.Repository,
			Clock:      deps.Clock,
			Admins:     deps.Admins,
			Logger:     deps.Logger,
		},
		UpdateRole: commands.UpdateRoleUseCase{
			Policy:     policy,
			Repository: deps.Repository,
			Clock:      deps.Clock,
			Logger:     deps.Logger,
		},
		DeleteAccount: commands.DeleteAccountUseCase{
			Policy:     policy,
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		GetRole: queries.GetRoleUseCase{
			Policy:     policy,
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		Logger: deps.Logger,
	}

	return Module{
		Handler: handler,
		Policy:  policy,
		PromoteAdmins: commands.PromoteAdminsUseCase{
			Emails:     deps.Admins,
			Repository: deps.Repository,
			Clock:      deps.Clock,
			Logger:     deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(logger *slog.Logger) Module {
	return NewInMemoryModuleWithAdmins(nil, logger)
}

// NewInMemoryModuleWithAdmins is NewInMemoryModule with an admin allowlist.
func NewInMemoryModuleWithAdmins(admins commands.AdminEmails, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		Admins:     admins,
		Logger:     logger,
	})
	module.Store = store
	return module
}
