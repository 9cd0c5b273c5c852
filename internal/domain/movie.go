package domain

import (
	"context"
	"time"
)

const (
	TicketsStatusSoldOut  = "SOLD OUT"
	TicketsStatusBookASAP = "BOOK ASAP"
)

type Movie struct {
	ID            int
	Name          string
	TheatreName   string
	TotalCapacity int
	Available     int
	TicketsStatus string
	CreatedAt     time.Time
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]*Movie, error)
	GetByName(ctx context.Context, name string) ([]*Movie, error)
	GetByNameAndTheatre(ctx context.Context, name, theatreName string) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	UpdateStatus(ctx context.Context, movieID int, status string) error
	DeleteByName(ctx context.Context, name string) (int64, error)
}
