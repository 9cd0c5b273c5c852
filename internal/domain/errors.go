package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrMovieNotFound        = errors.New("movie not found")
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrMovieAlreadyExists   = errors.New("a showing already exists for this movie and theatre")
	ErrSeatAlreadyReserved  = errors.New("seat(s) are already reserved")
	ErrSeatCountMismatch    = errors.New("number of seats does not match the requested ticket count")
	ErrInsufficientCapacity = errors.New("not enough tickets available")
)

// SeatAlreadyBookedError names the first requested seat that is already
// claimed by an existing booking for the same movie and theatre.
type SeatAlreadyBookedError struct {
	Seat string
}

func (e SeatAlreadyBookedError) Error() string {
	return fmt.Sprintf("seat number %s is already booked", e.Seat)
}
