package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testShowTime() *ShowTime {
	return &ShowTime{
		ID: "st1",
		SeatMap: []SeatRow{
			{
				Row: "A",
				Seats: []Seat{
					{ID: "A1", Number: 1, Status: SeatAvailable, Price: decimal.NewFromInt(15)},
					{ID: "A2", Number: 2, Status: SeatBooked, Price: decimal.NewFromInt(15)},
				},
			},
			{
				Row: "D",
				Seats: []Seat{
					{ID: "D1", Number: 1, Status: SeatAvailable, Price: decimal.NewFromInt(12)},
				},
			},
		},
	}
}

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name    string
		seatIDs []string
		want    int64
	}{
		{"empty set is zero", nil, 0},
		{"single seat", []string{"A1"}, 15},
		{"seats across rows", []string{"A1", "D1"}, 27},
		{"unknown ids contribute zero", []string{"A1", "Z9"}, 15},
		{"only unknown ids", []string{"Z9"}, 0},
		{"booked seats still priced", []string{"A2"}, 15},
	}

	st := testShowTime()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := st.TotalPrice(tt.seatIDs)
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("TotalPrice(%v) = %s, want %d", tt.seatIDs, got, tt.want)
			}
		})
	}
}

func TestSeatLookup(t *testing.T) {
	st := testShowTime()

	seat, ok := st.Seat("D1")
	if !ok {
		t.Fatal("Seat(D1) not found")
	}
	if seat.Number != 1 {
		t.Errorf("seat number = %d, want 1", seat.Number)
	}

	if _, ok := st.Seat("Z1"); ok {
		t.Error("Seat(Z1) should not be found")
	}
}

func TestCountAvailable(t *testing.T) {
	st := testShowTime()

	if got := st.CountAvailable(); got != 2 {
		t.Errorf("CountAvailable() = %d, want 2", got)
	}
}

func TestCloneDetachesSeatMap(t *testing.T) {
	movie := &Movie{
		ID:        "1",
		Genres:    []string{"Action"},
		ShowTimes: []*ShowTime{testShowTime()},
	}

	clone := movie.Clone()

	seat, ok := clone.ShowTimes[0].Seat("A1")
	if !ok {
		t.Fatal("Seat(A1) not found in clone")
	}
	seat.Status = SeatBooked
	clone.ShowTimes[0].AvailableSeats = 99
	clone.Genres[0] = "Horror"

	if original, _ := movie.ShowTimes[0].Seat("A1"); original.Status != SeatAvailable {
		t.Error("mutating the clone's seat reached the original")
	}

	if movie.ShowTimes[0].AvailableSeats == 99 {
		t.Error("mutating the clone's counter reached the original")
	}

	if movie.Genres[0] != "Action" {
		t.Error("mutating the clone's genres reached the original")
	}
}
