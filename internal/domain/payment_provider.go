package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type PaymentRequest struct {
	UserID string
	Method PaymentMethod
	Amount decimal.Decimal
}

type PaymentProvider interface {
	Process(ctx context.Context, req PaymentRequest) (PaymentStatus, error)
}
