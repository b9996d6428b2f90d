package mocks

import (
	"context"

	"cinebook/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc      func(ctx context.Context, language string) ([]*domain.Movie, error)
	GetByIdFunc     func(ctx context.Context, id string) (*domain.Movie, error)
	GetShowTimeFunc func(ctx context.Context, movieID, showTimeID string) (*domain.Movie, *domain.ShowTime, error)
}

func (m *MockMovieRepo) GetAll(ctx context.Context, language string) ([]*domain.Movie, error) {
	return m.GetAllFunc(ctx, language)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id string) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) GetShowTime(ctx context.Context, movieID, showTimeID string) (*domain.Movie, *domain.ShowTime, error) {
	return m.GetShowTimeFunc(ctx, movieID, showTimeID)
}
