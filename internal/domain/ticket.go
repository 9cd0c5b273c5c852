package domain

import (
	"context"
	"time"
)

// Ticket is a booking record. Seats holds the seat identifiers in the order
// they were requested; its length always equals Count. Tickets are never
// mutated after creation and are only removed by movie-deletion cascade.
type Ticket struct {
	ID          string
	UserID      int
	MovieName   string
	TheatreName string
	Count       int
	Seats       []string
	CreatedAt   time.Time
}

type TicketRepository interface {
	GetByID(ctx context.Context, id string) (*Ticket, error)
	GetByMovie(ctx context.Context, movieName string) ([]*Ticket, error)
	GetByMovieAndTheatre(ctx context.Context, movieName, theatreName string) ([]*Ticket, error)

	// CreateWithDecrement persists the ticket and decrements the matching
	// movie's available count by ticket.Count in a single transaction.
	CreateWithDecrement(ctx context.Context, ticket *Ticket) error
}
