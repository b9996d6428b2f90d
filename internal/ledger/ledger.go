// Package ledger owns the authoritative movie catalog, seat state and booking
// list. All mutations go through Create, which keeps the per-showtime
// invariant: AvailableSeats always equals the number of seats whose status is
// available.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"cinebook/internal/domain"
)

type Ledger struct {
	mu       sync.RWMutex
	movies   []*domain.Movie
	bookings []*domain.Booking

	now func() time.Time
}

func New(movies []*domain.Movie) *Ledger {
	return &Ledger{
		movies: movies,
		now:    time.Now,
	}
}

// Read methods return deep-copied snapshots taken under the read lock, so a
// caller never shares memory with the live state Create mutates and never
// observes a commit halfway through.

// GetAll returns the movies matching the given language. An empty string or
// "All" matches every movie.
func (l *Ledger) GetAll(ctx context.Context, language string) ([]*domain.Movie, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	movies := []*domain.Movie{}

	for _, movie := range l.movies {
		if language != "" && language != "All" && movie.Language != language {
			continue
		}

		movies = append(movies, movie.Clone())
	}

	return movies, nil
}

func (l *Ledger) GetById(ctx context.Context, id string) (*domain.Movie, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	movie, err := l.findMovie(id)
	if err != nil {
		return nil, err
	}

	return movie.Clone(), nil
}

func (l *Ledger) GetShowTime(ctx context.Context, movieID, showTimeID string) (*domain.Movie, *domain.ShowTime, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	movie, showTime, err := l.findShowTime(movieID, showTimeID)
	if err != nil {
		return nil, nil, err
	}

	return movie.Clone(), showTime.Clone(), nil
}

// Create commits a booking: it snapshots the selected seats, flips them to
// booked, decrements the showtime's available counter and appends the booking.
// The whole commit happens under the ledger lock, so a partial update is never
// observable. Every seat is re-verified to still be available right before the
// flip; if any was taken by an earlier commit the call fails without touching
// anything.
func (l *Ledger) Create(ctx context.Context, params domain.BookingParams) (*domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	seatIDs := dedupe(params.SeatIDs)
	if len(seatIDs) == 0 {
		return nil, domain.ErrNoSeatsSelected
	}

	_, showTime, err := l.findShowTime(params.MovieID, params.ShowTimeID)
	if err != nil {
		return nil, err
	}

	seats := make([]*domain.Seat, len(seatIDs))
	snapshots := make([]domain.BookedSeat, len(seatIDs))

	for i, id := range seatIDs {
		seat, ok := showTime.Seat(id)
		if !ok {
			return nil, fmt.Errorf("seat %s: %w", id, domain.ErrRecordNotFound)
		}

		if seat.Status != domain.SeatAvailable {
			return nil, fmt.Errorf("seat %s: %w", id, domain.ErrSeatAlreadyReserved)
		}

		seats[i] = seat
		snapshots[i] = domain.BookedSeat{
			ID:     seat.ID,
			Row:    rowLabel(id),
			Number: seat.Number,
			Price:  seat.Price,
		}
	}

	booking := &domain.Booking{
		ID:            uuid.NewString(),
		UserID:        params.UserID,
		MovieID:       params.MovieID,
		ShowTimeID:    params.ShowTimeID,
		Seats:         snapshots,
		TotalPrice:    showTime.TotalPrice(seatIDs),
		CreatedAt:     l.now(),
		PaymentStatus: params.PaymentStatus,
		PaymentMethod: params.PaymentMethod,
	}

	for _, seat := range seats {
		seat.Status = domain.SeatBooked
	}

	showTime.AvailableSeats -= len(seats)
	l.bookings = append(l.bookings, booking)

	return booking, nil
}

// GetAllByUserId returns the user's bookings, most recent first. No bookings
// is an empty slice, not an error.
func (l *Ledger) GetAllByUserId(ctx context.Context, userID string) ([]*domain.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	bookings := []*domain.Booking{}

	for i := len(l.bookings) - 1; i >= 0; i-- {
		if l.bookings[i].UserID == userID {
			bookings = append(bookings, l.bookings[i])
		}
	}

	return bookings, nil
}

func (l *Ledger) findMovie(id string) (*domain.Movie, error) {
	for _, movie := range l.movies {
		if movie.ID == id {
			return movie, nil
		}
	}

	return nil, domain.ErrRecordNotFound
}

func (l *Ledger) findShowTime(movieID, showTimeID string) (*domain.Movie, *domain.ShowTime, error) {
	movie, err := l.findMovie(movieID)
	if err != nil {
		return nil, nil, err
	}

	for _, showTime := range movie.ShowTimes {
		if showTime.ID == showTimeID {
			return movie, showTime, nil
		}
	}

	return nil, nil, domain.ErrRecordNotFound
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}

		seen[id] = true
		out = append(out, id)
	}

	return out
}

// rowLabel extracts the row part of a seat id like "C7".
func rowLabel(seatID string) string {
	for i, r := range seatID {
		if r >= '0' && r <= '9' {
			return seatID[:i]
		}
	}

	return seatID
}
