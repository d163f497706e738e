package commands

import (
	"context"
	"strings"
	"time"

	application "scholarstream/contexts/admissions/application-service/application"
	"scholarstream/contexts/admissions/application-service/domain/entities"
	"scholarstream/internal/shared/identity"
)

type CompleteCheckoutCommand struct {
	Caller    identity.Identity
	SessionID string
}

// Complete turns a paid session into a paid, submitted application. Invoking
// it again for the same session converges on the same record.
func (uc CheckoutUseCase) Complete(ctx context.Context, cmd CompleteCheckoutCommand) (result entities.Application, err error) {
	defer func() { uc.observe("complete", err) }()

	session, err := uc.retrieveSession(ctx, "complete", cmd.Caller, cmd.SessionID, true)
	if err != nil {
		return entities.Application{}, err
	}
	scholarship, err := uc.loadScholarship(ctx, "complete", session.Metadata.ScholarshipID)
	if err != nil {
		return entities.Application{}, err
	}

	applicationID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Application{}, uc.upstreamFailure("complete", "new_id", err)
	}
	now := uc.now()
	paid := newApplication(applicationID, scholarship, cmd.Caller, session.Metadata.UserName, now)
	paid.PaymentStatus = entities.PaymentStatusPaid
	paid.ApplicationStatus = entities.ApplicationStatusSubmitted
	paid.PaymentDate = &now
	paid.TransactionID = strings.TrimSpace(session.TransactionID)
	paid.CheckoutSessionID = session.SessionID

	stored, err := uc.Repository.UpsertPaid(ctx, paid)
	if err != nil {
		return entities.Application{}, uc.upstreamFailure("complete", "upsert_paid", err)
	}

	application.ResolveLogger(uc.Logger).Info("checkout completed",
		"event", "checkout_completed",
		"module", "admissions/application-service",
		"layer", "application",
		"session_id", session.SessionID,
		"application_id", stored.ApplicationID,
		"transaction_id", stored.TransactionID,
		"application_status", string(stored.ApplicationStatus),
	)
	return stored, nil
}

func newApplication(
	applicationID string,
	scholarship entities.ScholarshipSnapshot,
	caller identity.Identity,
	userName string,
	now time.Time,
) entities.Application {
	return entities.Application{
		ApplicationID:       applicationID,
		ScholarshipID:       scholarship.ScholarshipID,
		UserID:              caller.UserID,
		UserEmail:           identity.NormalizeEmail(caller.Email),
		UserName:            strings.TrimSpace(userName),
		UniversityName:      scholarship.UniversityName,
		ScholarshipCategory: scholarship.ScholarshipCategory,
		Degree:              scholarship.Degree,
		ApplicationFees:     scholarship.ApplicationFees,
		ServiceCharge:       scholarship.ServiceCharge,
		PaymentStatus:       entities.PaymentStatusUnpaid,
		ApplicationStatus:   entities.ApplicationStatusPending,
		ApplicationDate:     now,
		UpdatedAt:           now,
	}
}
