package user

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=user

type Repository interface {
	// Create appends u unless its username or email is already registered.
	Create(ctx context.Context, u *User) error
	// Exists reports whether username or email is already registered.
	Exists(ctx context.Context, username, email string) (bool, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}
