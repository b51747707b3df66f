package checkout

import (
	"context"
	"fmt"

	"github.com/pragadeesh891/trolley/internal/payment"
	"github.com/pragadeesh891/trolley/internal/receipt"
)

// ChargeFunc creates the payment intent. The indirection lets the handler
// bind the idempotency key without the step knowing about HTTP headers.
type ChargeFunc func(ctx context.Context, sessionID string, amount float64) (payment.Intent, error)

// PaymentStep charges the trip total and remembers the intent so it can be
// refunded if a later step fails.
type PaymentStep struct {
	charge    ChargeFunc
	refund    func(ctx context.Context, intentID string) error
	sessionID string
	amount    float64
	intent    payment.Intent
}

func NewPaymentStep(provider payment.Provider, charge ChargeFunc, sessionID string, amount float64) *PaymentStep {
	if charge == nil {
		charge = provider.CreateIntent
	}
	return &PaymentStep{
		charge:    charge,
		refund:    provider.Refund,
		sessionID: sessionID,
		amount:    amount,
	}
}

func (s *PaymentStep) Name() string { return "payment_charge" }

func (s *PaymentStep) Execute(ctx context.Context) error {
	in, err := s.charge(ctx, s.sessionID, s.amount)
	if err != nil {
		return fmt.Errorf("charge %g: %w", s.amount, err)
	}
	s.intent = in
	return nil
}

func (s *PaymentStep) Compensate(ctx context.Context) error {
	if s.intent.ID == "" {
		return nil
	}
	return s.refund(ctx, s.intent.ID)
}

// Intent returns the intent created by Execute. Zero value before Run or
// after a failed charge.
func (s *PaymentStep) Intent() payment.Intent { return s.intent }

// ReceiptStep emails the bill. It is the last step; a failed delivery
// rolls the charge back rather than leaving a paid trip without a receipt.
type ReceiptStep struct {
	sender receipt.Sender
	to     string
	bill   []string
}

func NewReceiptStep(sender receipt.Sender, to string, bill []string) *ReceiptStep {
	return &ReceiptStep{sender: sender, to: to, bill: bill}
}

func (s *ReceiptStep) Name() string { return "receipt_delivery" }

func (s *ReceiptStep) Execute(ctx context.Context) error {
	if s.to == "" {
		// Shopper left no address; nothing to deliver.
		return nil
	}
	return s.sender.Send(ctx, s.to, s.bill)
}

// Compensate is a no-op: an email cannot be unsent, and the step is
// terminal so nothing downstream depends on it.
func (s *ReceiptStep) Compensate(ctx context.Context) error { return nil }
