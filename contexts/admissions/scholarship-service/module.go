package scholarshipservice

import (
	"log/slog"

	httpadapter "scholarstream/contexts/admissions/scholarship-service/adapters/http"
	"scholarstream/contexts/admissions/scholarship-service/adapters/memory"
	"scholarstream/contexts/admissions/scholarship-service/application/commands"
	"scholarstream/contexts/admissions/scholarship-service/application/queries"
	"scholarstream/contexts/admissions/scholarship-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository  ports.Repository
	Authorizer  ports.Authorizer
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Create: commands.CreateScholarshipUseCase{
				Authorizer:  deps.Authorizer,
				Repository:  deps.Repository,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			Queries: queries.QueryUseCase{Repository: deps.Repository},
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(authorizer ports.Authorizer, logger *slog.Logger) Module {
	store := memory.NewStore(nil)
	module := NewModule(Dependencies{
		Repository:  store,
		Authorizer:  authorizer,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
