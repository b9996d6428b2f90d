package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodUpi        PaymentMethod = "upi"
)

// BookedSeat is a snapshot of a seat captured at booking time. It stays
// unchanged no matter what happens to the underlying seat afterwards.
type BookedSeat struct {
	ID     string
	Row    string
	Number int
	Price  decimal.Decimal
}

// Booking is created exactly once at commit time and is immutable after that.
// There is no edit or cancel path.
type Booking struct {
	ID            string
	UserID        string
	MovieID       string
	ShowTimeID    string
	Seats         []BookedSeat
	TotalPrice    decimal.Decimal
	CreatedAt     time.Time
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod
}

type BookingParams struct {
	MovieID       string
	ShowTimeID    string
	UserID        string
	SeatIDs       []string
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod
}

type BookingRepository interface {
	Create(ctx context.Context, params BookingParams) (*Booking, error)
	GetAllByUserId(ctx context.Context, userID string) ([]*Booking, error)
}
