package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrSeatAlreadyReserved = errors.New("seat(s) are already reserved")
	ErrNoSeatsSelected     = errors.New("no seats selected")
)
