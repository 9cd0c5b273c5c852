package mocks

import (
	"context"

	"github.com/rbpdev/movie-booking-system/internal/booking"
	"github.com/rbpdev/movie-booking-system/internal/domain"
)

type MockCoordinator struct {
	BookFunc        func(ctx context.Context, req booking.Request) (booking.Result, error)
	DeleteMovieFunc func(ctx context.Context, movieName string) (int64, error)
}

func (m *MockCoordinator) Book(ctx context.Context, req booking.Request) (booking.Result, error) {
	return m.BookFunc(ctx, req)
}

func (m *MockCoordinator) DeleteMovie(ctx context.Context, movieName string) (int64, error) {
	return m.DeleteMovieFunc(ctx, movieName)
}

type MockClassifier struct {
	RecomputeStatusFunc func(ctx context.Context, movieName, ticketID string) ([]*domain.Movie, error)
}

func (m *MockClassifier) RecomputeStatus(ctx context.Context, movieName, ticketID string) ([]*domain.Movie, error) {
	return m.RecomputeStatusFunc(ctx, movieName, ticketID)
}
