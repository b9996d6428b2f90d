package domain

import (
	"context"
	"time"
)

// ViewedMovie records that a movie detail was opened at a point in time.
type ViewedMovie struct {
	MovieID  string    `json:"movieId"`
	ViewedAt time.Time `json:"viewedAt"`
}

type HistoryRepository interface {
	Add(ctx context.Context, movieID string) error
	GetAll(ctx context.Context) ([]ViewedMovie, error)
}
