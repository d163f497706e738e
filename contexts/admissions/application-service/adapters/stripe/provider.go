package stripeadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	domainerrors "scholarstream/contexts/admissions/application-service/domain/errors"
	"scholarstream/contexts/admissions/application-service/ports"
)

const (
	metadataScholarshipID = "scholarshipId"
	metadataUserID        = "userId"
	metadataUserEmail     = "userEmail"
	metadataUserName      = "userName"
)

type Config struct {
	SecretKey string
	// Backends overrides the Stripe API endpoint; nil uses the public API.
	Backends *stripe.Backends
}

// Provider implements ports.CheckoutProvider with Stripe Checkout Sessions.
type Provider struct {
	api    *client.API
	logger *slog.Logger
}

func NewProvider(cfg Config, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	api := &client.API{}
	api.Init(cfg.SecretKey, cfg.Backends)
	return &Provider{api: api, logger: logger}
}

func (p *Provider) CreateSession(ctx context.Context, input ports.CreateCheckoutSessionInput) (ports.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(input.CustomerEmail),
		SuccessURL:    stripe.String(input.SuccessURL),
		CancelURL:     stripe.String(input.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(input.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(input.ProductName),
					},
					UnitAmount: stripe.Int64(input.AmountMinor),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata(metadataScholarshipID, input.Metadata.ScholarshipID)
	params.AddMetadata(metadataUserID, input.Metadata.UserID)
	params.AddMetadata(metadataUserEmail, input.Metadata.UserEmail)
	params.AddMetadata(metadataUserName, input.Metadata.UserName)

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return ports.CheckoutSession{}, fmt.Errorf("create stripe checkout session: %w", err)
	}
	p.logger.Debug("stripe checkout session created",
		"event", "stripe_checkout_session_created",
		"module", "admissions/application-service",
		"layer", "adapter",
		"session_id", session.ID,
	)
	return toCheckoutSession(session), nil
}

func (p *Provider) RetrieveSession(ctx context.Context, sessionID string) (ports.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("payment_intent")

	session, err := p.api.CheckoutSessions.Get(strings.TrimSpace(sessionID), params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return ports.CheckoutSession{}, domainerrors.ErrCheckoutSessionNotFound
		}
		return ports.CheckoutSession{}, fmt.Errorf("retrieve stripe checkout session: %w", err)
	}
	return toCheckoutSession(session), nil
}

func toCheckoutSession(session *stripe.CheckoutSession) ports.CheckoutSession {
	result := ports.CheckoutSession{
		SessionID:     session.ID,
		URL:           session.URL,
		PaymentStatus: string(session.PaymentStatus),
		Paid:          session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		Metadata: ports.CheckoutMetadata{
			ScholarshipID: session.Metadata[metadataScholarshipID],
			UserID:        session.Metadata[metadataUserID],
			UserEmail:     session.Metadata[metadataUserEmail],
			UserName:      session.Metadata[metadataUserName],
		},
	}
	if session.PaymentIntent != nil {
		result.TransactionID = session.PaymentIntent.ID
	}
	return result
}
