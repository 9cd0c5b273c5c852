package mocks

import (
	"context"

	"github.com/rbpdev/movie-booking-system/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc              func(ctx context.Context) ([]*domain.Movie, error)
	GetByNameFunc           func(ctx context.Context, name string) ([]*domain.Movie, error)
	GetByNameAndTheatreFunc func(ctx context.Context, name, theatreName string) (*domain.Movie, error)
	CreateFunc              func(ctx context.Context, movie *domain.Movie) error
	UpdateStatusFunc        func(ctx context.Context, movieID int, status string) error
	DeleteByNameFunc        func(ctx context.Context, name string) (int64, error)
}

func (m *MockMovieRepo) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockMovieRepo) GetByName(ctx context.Context, name string) ([]*domain.Movie, error) {
	return m.GetByNameFunc(ctx, name)
}

func (m *MockMovieRepo) GetByNameAndTheatre(ctx context.Context, name, theatreName string) (*domain.Movie, error) {
	return m.GetByNameAndTheatreFunc(ctx, name, theatreName)
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) UpdateStatus(ctx context.Context, movieID int, status string) error {
	return m.UpdateStatusFunc(ctx, movieID, status)
}

func (m *MockMovieRepo) DeleteByName(ctx context.Context, name string) (int64, error) {
	return m.DeleteByNameFunc(ctx, name)
}
