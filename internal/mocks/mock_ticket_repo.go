package mocks

import (
	"context"

	"github.com/rbpdev/movie-booking-system/internal/domain"
)

type MockTicketRepo struct {
	domain.TicketRepository
	GetByIDFunc              func(ctx context.Context, id string) (*domain.Ticket, error)
	GetByMovieFunc           func(ctx context.Context, movieName string) ([]*domain.Ticket, error)
	GetByMovieAndTheatreFunc func(ctx context.Context, movieName, theatreName string) ([]*domain.Ticket, error)
	CreateWithDecrementFunc  func(ctx context.Context, ticket *domain.Ticket) error
}

func (m *MockTicketRepo) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockTicketRepo) GetByMovie(ctx context.Context, movieName string) ([]*domain.Ticket, error) {
	return m.GetByMovieFunc(ctx, movieName)
}

func (m *MockTicketRepo) GetByMovieAndTheatre(ctx context.Context, movieName, theatreName string) ([]*domain.Ticket, error) {
	return m.GetByMovieAndTheatreFunc(ctx, movieName, theatreName)
}

func (m *MockTicketRepo) CreateWithDecrement(ctx context.Context, ticket *domain.Ticket) error {
	return m.CreateWithDecrementFunc(ctx, ticket)
}
