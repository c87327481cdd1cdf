package domain

import "errors"

var (
	ErrInvalidSeat      = errors.New("invalid seat")
	ErrAlreadySold      = errors.New("seat already sold")
	ErrSeatNotSold      = errors.New("seat is not sold")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrReceiptWrite     = errors.New("receipt write failed")
	ErrInvalidPassenger = errors.New("invalid passenger")
)
