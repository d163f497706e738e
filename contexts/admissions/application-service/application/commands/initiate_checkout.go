package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	application "scholarstream/contexts/admissions/application-service/application"
	domainerrors "scholarstream/contexts/admissions/application-service/domain/errors"
	"scholarstream/contexts/admissions/application-service/ports"
	"scholarstream/internal/shared/identity"
)

type InitiateCheckoutCommand struct {
	Caller        identity.Identity
	ScholarshipID string
	UserName      string
}

type InitiateCheckoutResult struct {
	SessionID   string
	URL         string
	AmountMinor int64
	Currency    string
}

// Initiate opens a checkout session for the caller. No application record is
// written here; the record appears when the session is completed or cancelled.
func (uc CheckoutUseCase) Initiate(ctx context.Context, cmd InitiateCheckoutCommand) (result InitiateCheckoutResult, err error) {
	defer func() { uc.observe("initiate", err) }()

	if cmd.Caller.IsZero() {
		return InitiateCheckoutResult{}, domainerrors.ErrUnauthenticated
	}
	scholarshipID := strings.TrimSpace(cmd.ScholarshipID)
	if scholarshipID == "" {
		return InitiateCheckoutResult{}, fmt.Errorf("%w: scholarship_id is required", domainerrors.ErrInvalidInput)
	}
	if err := uc.allow(ctx, cmd.Caller, scholarshipID); err != nil {
		return InitiateCheckoutResult{}, err
	}

	scholarship, err := uc.loadScholarship(ctx, "initiate", scholarshipID)
	if err != nil {
		return InitiateCheckoutResult{}, err
	}

	existing, err := uc.Repository.FindApplication(ctx, scholarshipID, cmd.Caller.UserID)
	switch {
	case err == nil && existing.IsPaid():
		return InitiateCheckoutResult{}, domainerrors.ErrAlreadyPaid
	case err != nil && !errors.Is(err, domainerrors.ErrApplicationNotFound):
		return InitiateCheckoutResult{}, uc.upstreamFailure("initiate", "find_application", err)
	}

	currency := uc.currency()
	session, err := uc.Provider.CreateSession(ctx, ports.CreateCheckoutSessionInput{
		CustomerEmail: cmd.Caller.Email,
		ProductName:   scholarship.ScholarshipName,
		Currency:      currency,
		AmountMinor:   scholarship.AmountMinorUnits(),
		Metadata: ports.CheckoutMetadata{
			ScholarshipID: scholarship.ScholarshipID,
			UserID:        cmd.Caller.UserID,
			UserEmail:     cmd.Caller.Email,
			UserName:      strings.TrimSpace(cmd.UserName),
		},
		SuccessURL: uc.successURL(),
		CancelURL:  uc.cancelURL(),
	})
	if err != nil {
		return InitiateCheckoutResult{}, uc.upstreamFailure("initiate", "create_session", err)
	}

	application.ResolveLogger(uc.Logger).Info("checkout session created",
		"event", "checkout_session_created",
		"module", "admissions/application-service",
		"layer", "application",
		"session_id", session.SessionID,
		"scholarship_id", scholarship.ScholarshipID,
		"user_id", cmd.Caller.UserID,
		"amount_minor", scholarship.AmountMinorUnits(),
	)
	return InitiateCheckoutResult{
		SessionID:   session.SessionID,
		URL:         session.URL,
		AmountMinor: scholarship.AmountMinorUnits(),
		Currency:    currency,
	}, nil
}

// allow applies the per (user, scholarship) limit. Limiter outages fail open.
func (uc CheckoutUseCase) allow(ctx context.Context, caller identity.Identity, scholarshipID string) error {
	if uc.RateLimiter == nil {
		return nil
	}
	allowed, err := uc.RateLimiter.Allow(ctx, "checkout:"+caller.UserID+":"+scholarshipID)
	if err != nil {
		application.ResolveLogger(uc.Logger).Warn("checkout rate limiter unavailable",
			"event", "checkout_rate_limiter_unavailable",
			"module", "admissions/application-service",
			"layer", "application",
			"error", err.Error(),
		)
		return nil
	}
	if !allowed {
		return domainerrors.ErrRateLimited
	}
	return nil
}
