package applicationservice

import (
	"log/slog"

	httpadapter "scholarstream/contexts/admissions/application-service/adapters/http"
	"scholarstream/contexts/admissions/application-service/adapters/memory"
	"scholarstream/contexts/admissions/application-service/application/commands"
	"scholarstream/contexts/admissions/application-service/application/queries"
	"scholarstream/contexts/admissions/application-service/ports"
)

// Module is the application-service composition root exposed to runtime wiring.
type Module struct {
	Handler  httpadapter.Handler
	Store    *memory.Store
	Provider *memory.CheckoutProvider
}

type Dependencies struct {
	Repository   ports.Repository
	Authorizer   ports.Authorizer
	Scholarships ports.ScholarshipReader
	Checkout     ports.CheckoutProvider
	RateLimiter  ports.RateLimiter
	Metrics      ports.Metrics
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	Config       commands.CheckoutConfig
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		Checkout: commands.CheckoutUseCase{
			Authorizer:   deps.Authorizer,
			Repository:   deps.Repository,
			Scholarships: deps.Scholarships,
			Provider:     deps.Checkout,
			RateLimiter:  deps.RateLimiter,
			Metrics:      deps.Metrics,
			Clock:        deps.Clock,
			IDGenerator:  deps.IDGenerator,
			Config:       deps.Config,
			Logger:       deps.Logger,
		},
		OwnerEdit: commands.OwnerEditUseCase{
			Authorizer: deps.Authorizer,
			Repository: deps.Repository,
			Clock:      deps.Clock,
			Logger:     deps.Logger,
		},
		Review: commands.ReviewApplicationUseCase{
			Authorizer: deps.Authorizer,
			Repository: deps.Repository,
			Clock:      deps.Clock,
			Logger:     deps.Logger,
		},
		Queries: queries.QueryUseCase{
			Authorizer:   deps.Authorizer,
			Repository:   deps.Repository,
			Scholarships: deps.Scholarships,
			Logger:       deps.Logger,
		},
		Logger: deps.Logger,
	}
	return Module{Handler: handler}
}

// InMemoryDependencies are the collaborators an in-memory module still needs
// from other contexts.
type InMemoryDependencies struct {
	Authorizer   ports.Authorizer
	Scholarships ports.ScholarshipReader
	RateLimiter  ports.RateLimiter
	Metrics      ports.Metrics
	Config       commands.CheckoutConfig
	Logger       *slog.Logger
}

// NewInMemoryModule builds a development/testing module with in-memory
// storage and a fake checkout provider.
func NewInMemoryModule(deps InMemoryDependencies) Module {
	store := memory.NewStore(nil)
	provider := memory.NewCheckoutProvider()
	module := NewModule(Dependencies{
		Repository:   store,
		Authorizer:   deps.Authorizer,
		Scholarships: deps.Scholarships,
		Checkout:     provider,
		RateLimiter:  deps.RateLimiter,
		Metrics:      deps.Metrics,
		Clock:        store,
		IDGenerator:  store,
		Config:       deps.Config,
		Logger:       deps.Logger,
	})
	module.Store = store
	module.Provider = provider
	return module
}
