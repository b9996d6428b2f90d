// Package payment provides the payment provider implementations. No real
// gateway is integrated; the simulated provider models payment as a fixed
// latency step that always resolves successfully.
package payment

import (
	"context"
	"time"

	"cinebook/internal/domain"
)

type SimulatedProvider struct {
	delay time.Duration
}

func NewSimulatedProvider(delay time.Duration) *SimulatedProvider {
	return &SimulatedProvider{delay: delay}
}

// Process waits out the configured delay and reports the payment as
// completed. Context cancellation is the only way it can fail, which gives a
// future timeout-and-fail redesign a seam without inventing failure branches
// here.
func (p *SimulatedProvider) Process(ctx context.Context, req domain.PaymentRequest) (domain.PaymentStatus, error) {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return domain.PaymentStatusFailed, ctx.Err()
	case <-timer.C:
	}

	return domain.PaymentStatusCompleted, nil
}
