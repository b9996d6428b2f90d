package ledger

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"cinebook/internal/domain"
)

// Seat map shape: 7 rows of 12 seats, front rows (before row D) are premium
// priced. Roughly one seat in five starts out booked so the grid looks lived
// in from the first request.
const (
	rowLabels   = "ABCDEFG"
	seatsPerRow = 12

	premiumRowLimit = 'D'
	bookedRatio     = 0.2
)

var (
	premiumSeatPrice  = decimal.NewFromInt(15)
	standardSeatPrice = decimal.NewFromInt(12)
)

// FixtureMovies builds the seeded catalog the ledger starts from on every
// process start. Seat availability is randomized from the given seed; pass a
// non-zero seed for a reproducible grid.
func FixtureMovies(seed int64) []*domain.Movie {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))

	return []*domain.Movie{
		{
			ID:          "1",
			Title:       "RRR",
			PosterUrl:   "https://images.unsplash.com/photo-1533488765986-dfa2a9939acd?auto=format&fit=crop&q=80&w=1000",
			Description: "A tale of two legendary revolutionaries and their journey far away from home.",
			Duration:    "3h 2min",
			Genres:      []string{"Action", "Drama", "Historical"},
			Rating:      "UA",
			Language:    "Telugu",
			ShowTimes:   generateShowTimes(rng),
		},
		{
			ID:          "2",
			Title:       "Inception",
			PosterUrl:   "https://images.unsplash.com/photo-1536440136628-849c177e76a1?auto=format&fit=crop&q=80&w=1000",
			Description: "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
			Duration:    "2h 28min",
			Genres:      []string{"Action", "Sci-Fi", "Thriller"},
			Rating:      "UA",
			Language:    "English",
			ShowTimes:   generateShowTimes(rng),
		},
		{
			ID:          "3",
			Title:       "Pathaan",
			PosterUrl:   "https://images.unsplash.com/photo-1626814026160-2237a95fc5a0?auto=format&fit=crop&q=80&w=1000",
			Description: "An Indian spy takes on the leader of a group of mercenaries who have nefarious plans to target his homeland.",
			Duration:    "2h 46min",
			Genres:      []string{"Action", "Thriller"},
			Rating:      "UA",
			Language:    "Hindi",
			ShowTimes:   generateShowTimes(rng),
		},
		{
			ID:          "4",
			Title:       "Jailer",
			PosterUrl:   "https://images.unsplash.com/photo-1597002973885-8c90683fa6e0?auto=format&fit=crop&q=80&w=1000",
			Description: "A retired jailer goes on a manhunt to find his son's killers. But the road leads him to a familiar, albeit dangerous place.",
			Duration:    "2h 48min",
			Genres:      []string{"Action", "Drama"},
			Rating:      "UA",
			Language:    "Tamil",
			ShowTimes:   generateShowTimes(rng),
		},
		{
			ID:          "5",
			Title:       "Oppenheimer",
			PosterUrl:   "https://images.unsplash.com/photo-1518676590629-3dcbd9c5a5c9?auto=format&fit=crop&q=80&w=1000",
			Description: "The story of American scientist J. Robert Oppenheimer and his role in the development of the atomic bomb.",
			Duration:    "3h",
			Genres:      []string{"Biography", "Drama", "History"},
			Rating:      "R",
			Language:    "English",
			ShowTimes:   generateShowTimes(rng),
		},
	}
}

func generateShowTimes(rng *rand.Rand) []*domain.ShowTime {
	slots := []struct {
		id   string
		time string
	}{
		{"st1", "14:30"},
		{"st2", "18:00"},
		{"st3", "21:30"},
	}

	date := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	showTimes := make([]*domain.ShowTime, len(slots))

	for i, slot := range slots {
		showTime := &domain.ShowTime{
			ID:      slot.id,
			Date:    date,
			Time:    slot.time,
			SeatMap: generateSeatMap(rng),
		}

		// The counter must agree with the grid from the start, so count the
		// generated map rather than assuming how many seats the RNG booked.
		showTime.AvailableSeats = showTime.CountAvailable()
		showTimes[i] = showTime
	}

	return showTimes
}

func generateSeatMap(rng *rand.Rand) []domain.SeatRow {
	seatMap := make([]domain.SeatRow, 0, len(rowLabels))

	for _, row := range rowLabels {
		price := standardSeatPrice
		if row < premiumRowLimit {
			price = premiumSeatPrice
		}

		seats := make([]domain.Seat, seatsPerRow)

		for i := range seats {
			status := domain.SeatAvailable
			if rng.Float64() < bookedRatio {
				status = domain.SeatBooked
			}

			seats[i] = domain.Seat{
				ID:     fmt.Sprintf("%c%d", row, i+1),
				Number: i + 1,
				Status: status,
				Price:  price,
			}
		}

		seatMap = append(seatMap, domain.SeatRow{Row: string(row), Seats: seats})
	}

	return seatMap
}
