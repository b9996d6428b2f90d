package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"cinebook/internal/domain"
)

func TestSimulatedProviderCompletes(t *testing.T) {
	provider := NewSimulatedProvider(10 * time.Millisecond)

	status, err := provider.Process(context.Background(), domain.PaymentRequest{
		UserID: "user-1",
		Method: domain.PaymentMethodUpi,
		Amount: decimal.NewFromInt(30),
	})
	if err != nil {
		t.Fatal(err)
	}

	if status != domain.PaymentStatusCompleted {
		t.Errorf("status = %s, want completed", status)
	}
}

func TestSimulatedProviderHonorsCancellation(t *testing.T) {
	provider := NewSimulatedProvider(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, err := provider.Process(ctx, domain.PaymentRequest{
		UserID: "user-1",
		Method: domain.PaymentMethodCreditCard,
		Amount: decimal.NewFromInt(15),
	})
	if err == nil {
		t.Fatal("expected an error from a cancelled context")
	}

	if status != domain.PaymentStatusFailed {
		t.Errorf("status = %s, want failed", status)
	}
}
