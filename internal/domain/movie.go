package domain

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatBooked    SeatStatus = "booked"
)

type Movie struct {
	ID          string
	Title       string
	Description string
	PosterUrl   string
	Duration    string
	Genres      []string
	Rating      string
	Language    string
	ShowTimes   []*ShowTime
}

type ShowTime struct {
	ID             string
	Date           string
	Time           string
	AvailableSeats int
	SeatMap        []SeatRow
}

type SeatRow struct {
	Row   string
	Seats []Seat
}

// Seat status is persisted as available or booked only. The "selected" state
// shown during interactive picking is a session-level overlay, never stored here.
type Seat struct {
	ID     string
	Number int
	Status SeatStatus
	Price  decimal.Decimal
}

// Seat finds a seat by its id across all rows of the seat map.
func (st *ShowTime) Seat(seatID string) (*Seat, bool) {
	for i := range st.SeatMap {
		row := &st.SeatMap[i]
		for j := range row.Seats {
			if row.Seats[j].ID == seatID {
				return &row.Seats[j], true
			}
		}
	}

	return nil, false
}

// CountAvailable counts the seats currently available across the seat map.
func (st *ShowTime) CountAvailable() int {
	count := 0

	for _, row := range st.SeatMap {
		for _, seat := range row.Seats {
			if seat.Status == SeatAvailable {
				count++
			}
		}
	}

	return count
}

// TotalPrice sums the prices of the given seats. Seat ids that don't exist in
// the seat map contribute zero, they are not an error.
func (st *ShowTime) TotalPrice(seatIDs []string) decimal.Decimal {
	total := decimal.Zero

	for _, id := range seatIDs {
		seat, ok := st.Seat(id)
		if !ok {
			continue
		}

		total = total.Add(seat.Price)
	}

	return total
}

// Clone returns a deep copy of the movie: the genre, showtime and seat map
// slices are copied, never shared with the receiver.
func (m *Movie) Clone() *Movie {
	clone := *m
	clone.Genres = slices.Clone(m.Genres)

	clone.ShowTimes = make([]*ShowTime, len(m.ShowTimes))
	for i, st := range m.ShowTimes {
		clone.ShowTimes[i] = st.Clone()
	}

	return &clone
}

// Clone returns a deep copy of the showtime and its seat map.
func (st *ShowTime) Clone() *ShowTime {
	clone := *st

	clone.SeatMap = make([]SeatRow, len(st.SeatMap))
	for i, row := range st.SeatMap {
		clone.SeatMap[i] = SeatRow{Row: row.Row, Seats: slices.Clone(row.Seats)}
	}

	return &clone
}

type MovieRepository interface {
	GetAll(ctx context.Context, language string) ([]*Movie, error)
	GetById(ctx context.Context, id string) (*Movie, error)
	GetShowTime(ctx context.Context, movieID, showTimeID string) (*Movie, *ShowTime, error)
}
