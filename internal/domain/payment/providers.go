package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MockProvider simulates a gateway: it waits Delay, then reports Status with
// a fresh "<prefix>_<uuid>" reference.
type MockProvider struct {
	Provider string
	Prefix   string
	Status   Status
	Delay    time.Duration
}

func (p *MockProvider) Name() string {
	return p.Provider
}

func (p *MockProvider) Charge(ctx context.Context, charge Charge) (Result, error) {
	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	return Result{
		Status:        p.Status,
		TransactionId: p.Prefix + "_" + uuid.NewString(),
		Provider:      p.Provider,
	}, nil
}

// DefaultProviders returns the mock gateways for every supported method.
// Bank transfers need manual verification, so they stay pending.
func DefaultProviders() map[Method]Provider {
	return map[Method]Provider{
		MethodCard:   &MockProvider{Provider: "Stripe", Prefix: "card", Status: StatusSuccess},
		MethodBank:   &MockProvider{Provider: "Paystack", Prefix: "bank", Status: StatusPending},
		MethodMobile: &MockProvider{Provider: "Flutterwave", Prefix: "mobile", Status: StatusSuccess},
	}
}
