package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rbpdev/movie-booking-system/internal/domain"
	"github.com/rbpdev/movie-booking-system/internal/notifier"
)

type Status string

const (
	StatusBooked  Status = "booked"
	StatusSoldOut Status = "sold_out"
)

type Request struct {
	UserID      int
	MovieName   string
	TheatreName string
	Count       int
	Seats       []string
}

type Result struct {
	Status   Status
	TicketID string
	Seats    []string
}

// Coordinator owns the atomic check-and-commit booking transaction. It is the
// only component allowed to perform the compound ticket-insert plus
// movie-decrement mutation, and it holds no state of its own beyond the
// per-showing locks.
type Coordinator struct {
	logger   *slog.Logger
	movies   domain.MovieRepository
	tickets  domain.TicketRepository
	notifier notifier.Notifier
	locks    *keyedMutex
}

func NewCoordinator(
	logger *slog.Logger,
	movies domain.MovieRepository,
	tickets domain.TicketRepository,
	notifier notifier.Notifier,
) *Coordinator {

	return &Coordinator{
		logger:   logger,
		movies:   movies,
		tickets:  tickets,
		notifier: notifier,
		locks:    newKeyedMutex(),
	}
}

// Book reserves the requested seats and decrements the movie's remaining
// count as one unit. Two concurrent requests for the same showing are
// serialized; requests for different showings do not contend. A sold-out
// showing is a normal outcome, not an error.
func (c *Coordinator) Book(ctx context.Context, req Request) (Result, error) {
	if len(req.Seats) != req.Count {
		return Result{}, domain.ErrSeatCountMismatch
	}

	unlock := c.locks.lock(lockKey(req.MovieName, req.TheatreName))
	defer unlock()

	existing, err := c.tickets.GetByMovieAndTheatre(ctx, req.MovieName, req.TheatreName)
	if err != nil {
		return Result{}, fmt.Errorf("loading bookings for %q at %q: %w", req.MovieName, req.TheatreName, err)
	}

	conflicts := SeatConflicts(existing, req.Seats)
	if len(conflicts) > 0 {
		return Result{}, domain.SeatAlreadyBookedError{Seat: conflicts[0]}
	}

	movie, err := c.movies.GetByNameAndTheatre(ctx, req.MovieName, req.TheatreName)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return Result{}, domain.ErrMovieNotFound
		}

		return Result{}, err
	}

	if movie.Available < req.Count {
		return Result{Status: StatusSoldOut}, nil
	}

	ticket := &domain.Ticket{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		MovieName:   req.MovieName,
		TheatreName: req.TheatreName,
		Count:       req.Count,
		Seats:       req.Seats,
	}

	err = c.tickets.CreateWithDecrement(ctx, ticket)
	if err != nil {
		return Result{}, err
	}

	publishAsync(c.logger, c.notifier, fmt.Sprintf(
		"Movie ticket booked. Booking details: user %d booked %d ticket(s) for %s at %s, seats %v",
		req.UserID, req.Count, req.MovieName, req.TheatreName, req.Seats,
	))

	return Result{Status: StatusBooked, TicketID: ticket.ID, Seats: ticket.Seats}, nil
}

// DeleteMovie removes every showing of the named movie. Associated tickets
// are removed by the persistence layer's cascade. Returns the number of
// deleted showings; zero matches is reported as ErrMovieNotFound.
func (c *Coordinator) DeleteMovie(ctx context.Context, movieName string) (int64, error) {
	deleted, err := c.movies.DeleteByName(ctx, movieName)
	if err != nil {
		return 0, err
	}

	if deleted == 0 {
		return 0, domain.ErrMovieNotFound
	}

	publishAsync(c.logger, c.notifier, fmt.Sprintf("Movie deleted by the admin. %s is no longer available", movieName))

	return deleted, nil
}
