package service

import (
	"context"
	"math"
)

// paymentCurrency is the only currency the platform charges in.
const paymentCurrency = "usd"

// IntentCreator is the payment-provider boundary. Satisfied by
// payment.StripeClient; tests substitute a fake.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// PaymentService converts catalog prices into provider payment intents.
type PaymentService struct {
	provider IntentCreator
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(provider IntentCreator) *PaymentService {
	return &PaymentService{provider: provider}
}

// CreateIntent converts a decimal USD price into minor units (cents) and
// asks the provider for a client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))
	return s.provider.CreateIntent(ctx, amount, paymentCurrency)
}
