package service

import (
	"context"
	"testing"
)

type fakeIntentCreator struct {
	amount   int64
	currency string
}

func (f *fakeIntentCreator) CreateIntent(_ context.Context, amount int64, currency string) (string, error) {
	f.amount = amount
	f.currency = currency
	return "pi_secret", nil
}

func TestCreateIntentConvertsToMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{10, 1000},
		{19.99, 1999},
		{0.1, 10},
		{29.955, 2996}, // Rounded, not truncated
	}
	for _, tt := range tests {
		provider := &fakeIntentCreator{}
		svc := NewPaymentService(provider)

		secret, err := svc.CreateIntent(context.Background(), tt.price)
		if err != nil {
			t.Fatalf("CreateIntent(%v): %v", tt.price, err)
		}
		if secret != "pi_secret" {
			t.Errorf("expected provider secret to pass through, got %q", secret)
		}
		if provider.amount != tt.want {
			t.Errorf("CreateIntent(%v) sent amount %d, want %d", tt.price, provider.amount, tt.want)
		}
		if provider.currency != "usd" {
			t.Errorf("expected usd, got %q", provider.currency)
		}
	}
}
