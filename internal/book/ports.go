package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	FindByAuthor(ctx context.Context, author string) ([]Book, error)
	FindByTitle(ctx context.Context, title string) ([]Book, error)
	SetReview(ctx context.Context, isbn, review string) (Book, error)
}
