package payment

import (
	"context"

	"cinebook/internal/domain"
)

type MockProvider struct {
	ProcessFunc func(ctx context.Context, req domain.PaymentRequest) (domain.PaymentStatus, error)
}

func (m *MockProvider) Process(ctx context.Context, req domain.PaymentRequest) (domain.PaymentStatus, error) {
	if m.ProcessFunc == nil {
		return domain.PaymentStatusCompleted, nil
	}

	return m.ProcessFunc(ctx, req)
}
