package ports

import (
	"context"
	"time"

	"scholarstream/contexts/admissions/scholarship-service/domain/entities"
	"scholarstream/internal/shared/identity"
)

type Repository interface {
	CreateScholarship(ctx context.Context, scholarship entities.Scholarship) error
	GetScholarship(ctx context.Context, scholarshipID string) (entities.Scholarship, error)
	ListScholarships(ctx context.Context) ([]entities.Scholarship, error)
}

// Authorizer is satisfied by the authorization policy.
type Authorizer interface {
	RequireRole(ctx context.Context, caller identity.Identity, roles ...identity.Role) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
