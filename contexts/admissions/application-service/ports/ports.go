package ports

import (
	"context"
	"time"

	"scholarstream/contexts/admissions/application-service/domain/entities"
	"scholarstream/internal/shared/identity"
)

type ApplicationFilter struct {
	UserEmail string
	Status    entities.ApplicationStatus
}

// Repository is the application store. Every mutation is a single atomic
// statement; callers never read before writing to decide whether to insert.
type Repository interface {
	GetApplication(ctx context.Context, applicationID string) (entities.Application, error)
	FindApplication(ctx context.Context, scholarshipID string, userID string) (entities.Application, error)
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]entities.Application, error)

	// UpsertPaid inserts paid or merges it into the record keyed by
	// (scholarship, user) following services.MergePaid.
	UpsertPaid(ctx context.Context, paid entities.Application) (entities.Application, error)
	// InsertPendingIfAbsent never touches an existing record for the key.
	InsertPendingIfAbsent(ctx context.Context, pending entities.Application) (entities.Application, bool, error)

	// The following succeed only while the stored status matches; otherwise
	// they return ErrApplicationLocked / ErrInvalidStatusTransition.
	UpdatePendingDetails(ctx context.Context, applicationID string, details entities.ApplicantDetails, updatedAt time.Time) (entities.Application, error)
	DeletePending(ctx context.Context, applicationID string) error
	UpdateStatus(ctx context.Context, applicationID string, from entities.ApplicationStatus, to entities.ApplicationStatus, updatedAt time.Time) (entities.Application, error)

	UpdateFeedback(ctx context.Context, applicationID string, feedback string, updatedAt time.Time) (entities.Application, error)
}

type ScholarshipReader interface {
	GetScholarship(ctx context.Context, scholarshipID string) (entities.ScholarshipSnapshot, error)
}

// Authorizer is satisfied by the authorization policy.
type Authorizer interface {
	RequireRole(ctx context.Context, caller identity.Identity, roles ...identity.Role) error
	RequireOwnership(ctx context.Context, caller identity.Identity, ownerEmail string) error
}

// CheckoutMetadata binds a session to one applicant and scholarship.
type CheckoutMetadata struct {
	ScholarshipID string
	UserID        string
	UserEmail     string
	UserName      string
}

type CreateCheckoutSessionInput struct {
	CustomerEmail string
	ProductName   string
	Currency      string
	AmountMinor   int64
	Metadata      CheckoutMetadata
	SuccessURL    string
	CancelURL     string
}

type CheckoutSession struct {
	SessionID     string
	URL           string
	Paid          bool
	PaymentStatus string
	TransactionID string
	Metadata      CheckoutMetadata
}

type CheckoutProvider interface {
	CreateSession(ctx context.Context, input CreateCheckoutSessionInput) (CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (CheckoutSession, error)
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Metrics interface {
	ObserveCheckout(operation string, outcome string)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
