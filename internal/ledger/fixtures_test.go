package ledger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"cinebook/internal/domain"
)

func TestFixtureMoviesShape(t *testing.T) {
	movies := FixtureMovies(42)

	if len(movies) != 5 {
		t.Fatalf("movies = %d, want 5", len(movies))
	}

	for _, movie := range movies {
		if len(movie.ShowTimes) != 3 {
			t.Fatalf("movie %s showtimes = %d, want 3", movie.ID, len(movie.ShowTimes))
		}

		for _, st := range movie.ShowTimes {
			if len(st.SeatMap) != 7 {
				t.Fatalf("showtime %s rows = %d, want 7", st.ID, len(st.SeatMap))
			}

			for _, row := range st.SeatMap {
				if len(row.Seats) != 12 {
					t.Fatalf("row %s seats = %d, want 12", row.Row, len(row.Seats))
				}
			}
		}
	}
}

func TestFixtureSeatPricingByRow(t *testing.T) {
	movies := FixtureMovies(42)

	st := movies[0].ShowTimes[0]

	for _, row := range st.SeatMap {
		want := decimal.NewFromInt(12)
		if row.Row < "D" {
			want = decimal.NewFromInt(15)
		}

		for _, seat := range row.Seats {
			if !seat.Price.Equal(want) {
				t.Errorf("row %s seat %s price = %s, want %s", row.Row, seat.ID, seat.Price, want)
			}
		}
	}
}

func TestFixtureAvailableSeatsMatchesSeatMap(t *testing.T) {
	movies := FixtureMovies(7)

	for _, movie := range movies {
		for _, st := range movie.ShowTimes {
			if st.AvailableSeats != st.CountAvailable() {
				t.Errorf("movie %s showtime %s: AvailableSeats = %d, want %d",
					movie.ID, st.ID, st.AvailableSeats, st.CountAvailable())
			}

			// Every seat starts in a persisted status, never "selected".
			for _, row := range st.SeatMap {
				for _, seat := range row.Seats {
					if seat.Status != domain.SeatAvailable && seat.Status != domain.SeatBooked {
						t.Errorf("seat %s has status %q", seat.ID, seat.Status)
					}
				}
			}
		}
	}
}

func TestFixtureSeedIsReproducible(t *testing.T) {
	statuses := func(movies []*domain.Movie) []domain.SeatStatus {
		var out []domain.SeatStatus
		for _, movie := range movies {
			for _, st := range movie.ShowTimes {
				for _, row := range st.SeatMap {
					for _, seat := range row.Seats {
						out = append(out, seat.Status)
					}
				}
			}
		}
		return out
	}

	a := statuses(FixtureMovies(99))
	b := statuses(FixtureMovies(99))

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different seat maps (-a +b):\n%s", diff)
	}
}
