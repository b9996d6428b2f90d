package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cinebook/api"
	"cinebook/internal/domain"
)

func (app *Application) ToggleSeatSelection(w http.ResponseWriter, r *http.Request) {
	logger := app.logger

	movieId := chi.URLParam(r, "movieId")
	showtimeId := chi.URLParam(r, "showtimeId")

	var input api.ToggleSeatRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

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

	seat, ok := showTime.Seat(input.SeatId)
	if !ok {
		app.notFoundResponseWithErr(w, r, fmt.Errorf("seat %s does not exist for this showtime", input.SeatId))
		return
	}

	seatIds := app.selectedSeats(r, showtimeId)

	if idx := indexOf(seatIds, input.SeatId); idx >= 0 {
		seatIds = append(seatIds[:idx], seatIds[idx+1:]...)
	} else {
		if seat.Status == domain.SeatBooked {
			logger.Warn("attempt to select a booked seat", "showtimeId", showtimeId, "seatId", input.SeatId)
			app.editConflictResponseWithErr(w, r, fmt.Errorf("seat %s is already booked", input.SeatId))
			return
		}

		seatIds = append(seatIds, input.SeatId)
	}

	app.putSelectedSeats(r, showtimeId, seatIds)

	app.writeSelection(w, r, showTime, showtimeId, seatIds)
}

func (app *Application) GetSelection(w http.ResponseWriter, r *http.Request) {
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

	app.writeSelection(w, r, showTime, showtimeId, app.selectedSeats(r, showtimeId))
}

func (app *Application) writeSelection(
	w http.ResponseWriter,
	r *http.Request,
	showTime *domain.ShowTime,
	showtimeId string,
	seatIds []string) {

	if seatIds == nil {
		seatIds = []string{}
	}

	resp := api.SelectionResponse{
		ShowTimeId: showtimeId,
		SeatIds:    seatIds,
		TotalPrice: showTime.TotalPrice(seatIds),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}

	return -1
}
