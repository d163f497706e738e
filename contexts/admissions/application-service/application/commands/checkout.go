package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "scholarstream/contexts/admissions/application-service/application"
	"scholarstream/contexts/admissions/application-service/domain/entities"
	domainerrors "scholarstream/contexts/admissions/application-service/domain/errors"
	"scholarstream/contexts/admissions/application-service/ports"
	"scholarstream/internal/shared/identity"
)

const checkoutSessionPlaceholder = "{CHECKOUT_SESSION_ID}"

type CheckoutConfig struct {
	// ClientBaseURL is where the provider sends the browser back to.
	ClientBaseURL string
	Currency      string
}

// CheckoutUseCase reconciles external checkout sessions with application
// records. It is the only path that marks an application paid or submitted.
type CheckoutUseCase struct {
	Authorizer   ports.Authorizer
	Repository   ports.Repository
	Scholarships ports.ScholarshipReader
	Provider     ports.CheckoutProvider
	RateLimiter  ports.RateLimiter
	Metrics      ports.Metrics
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	Config       CheckoutConfig
	Logger       *slog.Logger
}

func (uc CheckoutUseCase) successURL() string {
	return strings.TrimRight(uc.Config.ClientBaseURL, "/") + "/payment-success?session_id=" + checkoutSessionPlaceholder
}

func (uc CheckoutUseCase) cancelURL() string {
	return strings.TrimRight(uc.Config.ClientBaseURL, "/") + "/payment-cancelled?session_id=" + checkoutSessionPlaceholder
}

func (uc CheckoutUseCase) currency() string {
	if currency := strings.ToLower(strings.TrimSpace(uc.Config.Currency)); currency != "" {
		return currency
	}
	return "usd"
}

func (uc CheckoutUseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}

// retrieveSession loads a session and checks that it belongs to caller.
// requirePaid makes the paid check run before the identity binding check.
func (uc CheckoutUseCase) retrieveSession(
	ctx context.Context,
	operation string,
	caller identity.Identity,
	sessionID string,
	requirePaid bool,
) (ports.CheckoutSession, error) {
	if caller.IsZero() {
		return ports.CheckoutSession{}, domainerrors.ErrUnauthenticated
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ports.CheckoutSession{}, fmt.Errorf("%w: session_id is required", domainerrors.ErrInvalidInput)
	}

	session, err := uc.Provider.RetrieveSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCheckoutSessionNotFound) {
			return ports.CheckoutSession{}, err
		}
		return ports.CheckoutSession{}, uc.upstreamFailure(operation, "retrieve_session", err)
	}
	if requirePaid && !session.Paid {
		return ports.CheckoutSession{}, domainerrors.ErrPaymentNotCompleted
	}
	if err := uc.checkBinding(ctx, caller, session); err != nil {
		application.ResolveLogger(uc.Logger).Warn("checkout session identity mismatch",
			"event", "checkout_session_identity_mismatch",
			"module", "admissions/application-service",
			"layer", "application",
			"operation", operation,
			"session_id", sessionID,
			"user_id", caller.UserID,
		)
		return ports.CheckoutSession{}, err
	}
	return session, nil
}

func (uc CheckoutUseCase) checkBinding(ctx context.Context, caller identity.Identity, session ports.CheckoutSession) error {
	if strings.TrimSpace(session.Metadata.UserID) != strings.TrimSpace(caller.UserID) {
		return domainerrors.ErrForbidden
	}
	return uc.Authorizer.RequireOwnership(ctx, caller, session.Metadata.UserEmail)
}

func (uc CheckoutUseCase) loadScholarship(ctx context.Context, operation string, scholarshipID string) (entities.ScholarshipSnapshot, error) {
	scholarship, err := uc.Scholarships.GetScholarship(ctx, scholarshipID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrScholarshipNotFound) {
			return entities.ScholarshipSnapshot{}, err
		}
		return entities.ScholarshipSnapshot{}, uc.upstreamFailure(operation, "load_scholarship", err)
	}
	return scholarship, nil
}

func (uc CheckoutUseCase) upstreamFailure(operation string, step string, err error) error {
	return application.UpstreamFailure(uc.Logger, operation, step, err)
}

func (uc CheckoutUseCase) observe(operation string, err error) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.ObserveCheckout(operation, checkoutOutcome(err))
}

func checkoutOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domainerrors.ErrUpstreamFailure):
		return "upstream_failure"
	case errors.Is(err, domainerrors.ErrPaymentNotCompleted):
		return "payment_not_completed"
	case errors.Is(err, domainerrors.ErrRateLimited):
		return "rate_limited"
	default:
		return "rejected"
	}
}
