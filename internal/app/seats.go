package app

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cinebook/api"
	"cinebook/internal/domain"
)

// Transient seat selection shown to clients on top of the persisted statuses.
// Only this handler layer knows about it; the ledger stores available and
// booked exclusively.
const seatStatusSelected = "selected"

func (app *Application) GetSeatMapByShowtime(w http.ResponseWriter, r *http.Request) {
	movieId := chi.URLParam(r, "movieId")
	showtimeId := chi.URLParam(r, "showtimeId")

	_, showTime, err := app.movieRepo.GetShowTime(r.Context(), movieId, showtimeId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	selected := make(map[string]bool)
	for _, id := range app.selectedSeats(r, showtimeId) {
		selected[id] = true
	}

	resp := api.SeatMapResponse{
		MovieId:    movieId,
		ShowTimeId: showtimeId,
		SeatRows:   toApiSeatRows(showTime.SeatMap, selected),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiSeatRows(seatMap []domain.SeatRow, selected map[string]bool) []api.SeatRow {
	rows := make([]api.SeatRow, len(seatMap))

	for i, row := range seatMap {
		apiRow := api.SeatRow{
			Row:   row.Row,
			Seats: make([]api.Seat, len(row.Seats)),
		}

		for j, seat := range row.Seats {
			status := string(seat.Status)
			if seat.Status == domain.SeatAvailable && selected[seat.ID] {
				status = seatStatusSelected
			}

			apiRow.Seats[j] = api.Seat{
				Id:     seat.ID,
				Number: seat.Number,
				Status: status,
				Price:  seat.Price,
			}
		}

		rows[i] = apiRow
	}

	return rows
}
