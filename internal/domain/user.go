package domain

import (
	"context"
	"time"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash []byte
	Role         Role
	CreatedAt    time.Time
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
}
