package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	domainerrors "scholarstream/contexts/admissions/application-service/domain/errors"
	"scholarstream/contexts/admissions/application-service/ports"
)

// CheckoutProvider is an in-process stand-in for the payment provider.
// Sessions start unpaid; tests settle them with MarkPaid.
type CheckoutProvider struct {
	mu sync.Mutex

	sessions map[string]checkoutSession
	sequence int
	failWith error
}

type checkoutSession struct {
	session ports.CheckoutSession
	input   ports.CreateCheckoutSessionInput
}

func NewCheckoutProvider() *CheckoutProvider {
	return &CheckoutProvider{sessions: make(map[string]checkoutSession)}
}

func (p *CheckoutProvider) CreateSession(_ context.Context, input ports.CreateCheckoutSessionInput) (ports.CheckoutSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failWith != nil {
		return ports.CheckoutSession{}, p.failWith
	}
	p.sequence++
	id := fmt.Sprintf("cs_test_%d", p.sequence)
	session := ports.CheckoutSession{
		SessionID:     id,
		URL:           "https://checkout.local/pay/" + id,
		PaymentStatus: "unpaid",
		Metadata:      input.Metadata,
	}
	p.sessions[id] = checkoutSession{session: session, input: input}
	return session, nil
}

func (p *CheckoutProvider) RetrieveSession(_ context.Context, sessionID string) (ports.CheckoutSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failWith != nil {
		return ports.CheckoutSession{}, p.failWith
	}
	item, ok := p.sessions[strings.TrimSpace(sessionID)]
	if !ok {
		return ports.CheckoutSession{}, domainerrors.ErrCheckoutSessionNotFound
	}
	return item.session, nil
}

// MarkPaid settles a session with the given provider transaction id.
func (p *CheckoutProvider) MarkPaid(sessionID string, transactionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	item := p.sessions[sessionID]
	item.session.Paid = true
	item.session.PaymentStatus = "paid"
	item.session.TransactionID = transactionID
	p.sessions[sessionID] = item
}

// Input returns the request a session was created from.
func (p *CheckoutProvider) Input(sessionID string) (ports.CreateCheckoutSessionInput, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	item, ok := p.sessions[sessionID]
	return item.input, ok
}

// FailWith makes every call return err until cleared with nil.
func (p *CheckoutProvider) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failWith = err
}
