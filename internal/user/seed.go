package user

import (
	"fmt"

	"bookstore/internal/platform/crypto"
)

// DefaultSeed returns the account every process starts with, password already hashed.
func DefaultSeed() ([]User, error) {
	hash, err := crypto.HashPassword("harixx33")
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}
	return []User{
		{Username: "haripriya", Email: "test@example.com", Password: hash},
	}, nil
}
