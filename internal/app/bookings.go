package app

import (
	"errors"
	"fmt"
	"net/http"

	"cinebook/api"
	"cinebook/internal/domain"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.logger

	var input api.CreateBookingRequest

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

	_, showTime, err := app.movieRepo.GetShowTime(r.Context(), input.MovieId, input.ShowTimeId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	userId := app.contextGetUserId(r)

	// Payment runs before the commit; in this scope it always resolves, so a
	// paid-but-unbooked state is only reachable through a lost seat race,
	// which surfaces as a conflict below.
	status, err := app.paymentProvider.Process(r.Context(), domain.PaymentRequest{
		UserID: userId,
		Method: domain.PaymentMethod(input.PaymentMethod),
		Amount: showTime.TotalPrice(input.SeatIds),
	})
	if err != nil {
		app.serverErrorResponse(w, r, fmt.Errorf("payment processing: %w", err))
		return
	}

	booking, err := app.bookingRepo.Create(r.Context(), domain.BookingParams{
		MovieID:       input.MovieId,
		ShowTimeID:    input.ShowTimeId,
		UserID:        userId,
		SeatIDs:       input.SeatIds,
		PaymentStatus: status,
		PaymentMethod: domain.PaymentMethod(input.PaymentMethod),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoSeatsSelected):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("one or more selected seats do not exist for this showtime"))
		case errors.Is(err, domain.ErrSeatAlreadyReserved):
			logger.Warn("booking conflict: seat taken between selection and commit", "showtimeId", input.ShowTimeId)
			app.editConflictResponseWithErr(w, r, fmt.Errorf("some of the selected seats are already reserved"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	// The committed seats are no longer a pending selection.
	app.sessionManager.Remove(r.Context(), selectionKey(input.ShowTimeId))

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingsOfUser(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	bookings, err := app.bookingRepo.GetAllByUserId(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingListResponse{
		Bookings: make([]api.BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		resp.Bookings[i] = toBookingResponse(booking)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingResponse(booking *domain.Booking) api.BookingResponse {
	seats := make([]api.BookedSeat, len(booking.Seats))

	for i, seat := range booking.Seats {
		seats[i] = api.BookedSeat{
			Id:     seat.ID,
			Row:    seat.Row,
			Number: seat.Number,
			Price:  seat.Price,
		}
	}

	return api.BookingResponse{
		Id:            booking.ID,
		UserId:        booking.UserID,
		MovieId:       booking.MovieID,
		ShowTimeId:    booking.ShowTimeID,
		Seats:         seats,
		TotalPrice:    booking.TotalPrice,
		PaymentStatus: string(booking.PaymentStatus),
		PaymentMethod: string(booking.PaymentMethod),
		CreatedAt:     booking.CreatedAt,
	}
}
