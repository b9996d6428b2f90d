package mocks

import (
	"context"

	"cinebook/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	CreateFunc         func(ctx context.Context, params domain.BookingParams) (*domain.Booking, error)
	GetAllByUserIdFunc func(ctx context.Context, userID string) ([]*domain.Booking, error)
}

func (m *MockBookingRepo) Create(ctx context.Context, params domain.BookingParams) (*domain.Booking, error) {
	return m.CreateFunc(ctx, params)
}

func (m *MockBookingRepo) GetAllByUserId(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return m.GetAllByUserIdFunc(ctx, userID)
}
