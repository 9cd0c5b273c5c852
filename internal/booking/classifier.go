package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rbpdev/movie-booking-system/internal/domain"
	"github.com/rbpdev/movie-booking-system/internal/notifier"
)

// Classifier recomputes the human-readable sold-out/available status label of
// a movie's showings from committed booking state. It runs on admin-triggered
// recompute, never as part of the booking path.
type Classifier struct {
	logger   *slog.Logger
	movies   domain.MovieRepository
	tickets  domain.TicketRepository
	notifier notifier.Notifier
}

func NewClassifier(
	logger *slog.Logger,
	movies domain.MovieRepository,
	tickets domain.TicketRepository,
	notifier notifier.Notifier,
) *Classifier {

	return &Classifier{
		logger:   logger,
		movies:   movies,
		tickets:  tickets,
		notifier: notifier,
	}
}

// RecomputeStatus relabels every showing of the named movie by comparing the
// total number of booked seats against each showing's remaining count. The
// admin caller pre-resolves identifiers: an unknown movie or ticket id is an
// error, not a silent no-op. One notification is emitted per invocation,
// regardless of the number of relabeled showings.
func (c *Classifier) RecomputeStatus(ctx context.Context, movieName, ticketID string) ([]*domain.Movie, error) {
	movies, err := c.movies.GetByName(ctx, movieName)
	if err != nil {
		return nil, err
	}

	if len(movies) == 0 {
		return nil, domain.ErrMovieNotFound
	}

	_, err = c.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrTicketNotFound
		}

		return nil, err
	}

	tickets, err := c.tickets.GetByMovie(ctx, movieName)
	if err != nil {
		return nil, err
	}

	booked := 0
	for _, ticket := range tickets {
		booked += ticket.Count
	}

	for _, movie := range movies {
		status := domain.TicketsStatusBookASAP
		if booked >= movie.Available {
			status = domain.TicketsStatusSoldOut
		}

		err = c.movies.UpdateStatus(ctx, movie.ID, status)
		if err != nil {
			return nil, err
		}

		movie.TicketsStatus = status
	}

	publishAsync(c.logger, c.notifier, fmt.Sprintf("Tickets status updated by the admin for movie %s", movieName))

	return movies, nil
}
