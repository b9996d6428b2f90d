// Package api defines the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type MovieSummary struct {
	Id          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PosterUrl   string   `json:"posterUrl"`
	Duration    string   `json:"duration"`
	Genres      []string `json:"genres"`
	Rating      string   `json:"rating"`
	Language    string   `json:"language"`
}

type MovieListResponse struct {
	Movies []MovieSummary `json:"movies"`
}

type ShowTime struct {
	Id             string `json:"id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	AvailableSeats int    `json:"availableSeats"`
}

type MovieDetailResponse struct {
	MovieSummary
	ShowTimes []ShowTime `json:"showTimes"`
}

type Seat struct {
	Id     string          `json:"id"`
	Number int             `json:"number"`
	Status string          `json:"status"`
	Price  decimal.Decimal `json:"price"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	MovieId    string    `json:"movieId"`
	ShowTimeId string    `json:"showTimeId"`
	SeatRows   []SeatRow `json:"seatRows"`
}

type ToggleSeatRequest struct {
	SeatId string `json:"seatId" validate:"required"`
}

type SelectionResponse struct {
	ShowTimeId string          `json:"showTimeId"`
	SeatIds    []string        `json:"seatIds"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=25"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	Id        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateBookingRequest struct {
	MovieId    string   `json:"movieId" validate:"required"`
	ShowTimeId string   `json:"showTimeId" validate:"required"`
	SeatIds    []string `json:"seatIds" validate:"required,min=1,dive,required"`

	PaymentMethod string `json:"paymentMethod" validate:"required,payment_method"`

	// Card methods get presence-only validation; UPI ids must match the
	// local-part@provider shape.
	CardNumber string `json:"cardNumber" validate:"required_unless=PaymentMethod upi"`
	CardExpiry string `json:"cardExpiry" validate:"required_unless=PaymentMethod upi"`
	CardCvv    string `json:"cardCvv" validate:"required_unless=PaymentMethod upi"`
	UpiId      string `json:"upiId" validate:"required_if=PaymentMethod upi,omitempty,upi"`
}

type BookedSeat struct {
	Id     string          `json:"id"`
	Row    string          `json:"row"`
	Number int             `json:"number"`
	Price  decimal.Decimal `json:"price"`
}

type BookingResponse struct {
	Id            string          `json:"id"`
	UserId        string          `json:"userId"`
	MovieId       string          `json:"movieId"`
	ShowTimeId    string          `json:"showTimeId"`
	Seats         []BookedSeat    `json:"seats"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	PaymentStatus string          `json:"paymentStatus"`
	PaymentMethod string          `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type HistoryEntry struct {
	MovieId  string    `json:"movieId"`
	ViewedAt time.Time `json:"viewedAt"`
}

type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
}
