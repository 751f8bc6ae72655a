package user

import (
	"context"

	"bookstore/internal/platform/crypto"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register stores a new user with a hashed password. The caller is expected
// to have checked that all fields are present. A taken username or email is
// reported before the password is hashed; Create repeats the check atomically.
func (s *Service) Register(ctx context.Context, username, email, password string) (User, error) {
	taken, err := s.repo.Exists(ctx, username, email)
	if err != nil {
		return User{}, err
	}
	if taken {
		return User{}, ErrAlreadyExists
	}

	hashedPassword, err := crypto.HashPassword(password)
	if err != nil {
		return User{}, err
	}

	newUser := &User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return User{}, err
	}
	return *newUser, nil
}

// Login reports ErrNotFound unless username exists and password matches its hash.
// Nothing is issued on success.
func (s *Service) Login(ctx context.Context, username, password string) error {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !crypto.VerifyPassword(u.Password, password) {
		return ErrNotFound
	}
	return nil
}
