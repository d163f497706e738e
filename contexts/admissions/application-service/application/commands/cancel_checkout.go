package commands

import (
	"context"

	application "scholarstream/contexts/admissions/application-service/application"
	"scholarstream/contexts/admissions/application-service/domain/entities"
	"scholarstream/internal/shared/identity"
)

type CancelCheckoutCommand struct {
	Caller    identity.Identity
	SessionID string
}

type CancelCheckoutResult struct {
	Application entities.Application
	Created     bool
}

// Cancel records an unpaid, pending application only when none exists for
// the (scholarship, user) pair. A cancel that arrives after a completion
// leaves the paid record untouched.
func (uc CheckoutUseCase) Cancel(ctx context.Context, cmd CancelCheckoutCommand) (result CancelCheckoutResult, err error) {
	defer func() { uc.observe("cancel", err) }()

	session, err := uc.retrieveSession(ctx, "cancel", cmd.Caller, cmd.SessionID, false)
	if err != nil {
		return CancelCheckoutResult{}, err
	}
	scholarship, err := uc.loadScholarship(ctx, "cancel", session.Metadata.ScholarshipID)
	if err != nil {
		return CancelCheckoutResult{}, err
	}

	applicationID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return CancelCheckoutResult{}, uc.upstreamFailure("cancel", "new_id", err)
	}
	pending := newApplication(applicationID, scholarship, cmd.Caller, session.Metadata.UserName, uc.now())
	pending.CheckoutSessionID = session.SessionID

	stored, created, err := uc.Repository.InsertPendingIfAbsent(ctx, pending)
	if err != nil {
		return CancelCheckoutResult{}, uc.upstreamFailure("cancel", "insert_pending", err)
	}

	application.ResolveLogger(uc.Logger).Info("checkout cancelled",
		"event", "checkout_cancelled",
		"module", "admissions/application-service",
		"layer", "application",
		"session_id", session.SessionID,
		"application_id", stored.ApplicationID,
		"created", created,
		"payment_status", string(stored.PaymentStatus),
	)
	return CancelCheckoutResult{Application: stored, Created: created}, nil
}
