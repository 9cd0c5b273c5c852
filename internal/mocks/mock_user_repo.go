package mocks

import (
	"context"

	"github.com/rbpdev/movie-booking-system/internal/domain"
)

type MockUserRepo struct {
	domain.UserRepository
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}
