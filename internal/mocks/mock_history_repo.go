package mocks

import (
	"context"

	"cinebook/internal/domain"
)

type MockHistoryRepo struct {
	domain.HistoryRepository
	AddFunc    func(ctx context.Context, movieID string) error
	GetAllFunc func(ctx context.Context) ([]domain.ViewedMovie, error)
}

func (m *MockHistoryRepo) Add(ctx context.Context, movieID string) error {
	if m.AddFunc == nil {
		return nil
	}

	return m.AddFunc(ctx, movieID)
}

func (m *MockHistoryRepo) GetAll(ctx context.Context) ([]domain.ViewedMovie, error) {
	return m.GetAllFunc(ctx)
}
