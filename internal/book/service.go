package book

import (
	"context"
	"time"

	"bookstore/internal/platform/async"
)

// DefaultDelay is how long the delayed lookups hold their answer back.
const DefaultDelay = 500 * time.Millisecond

// Service provides book-related business logic.
type Service struct {
	repo  Repository
	delay time.Duration
}

// NewService creates a new book service. A non-positive delay falls back to DefaultDelay.
func NewService(repo Repository, delay time.Duration) *Service {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Service{repo: repo, delay: delay}
}

// Delay reports the hold-back interval used by the delayed lookups.
func (s *Service) Delay() time.Duration {
	return s.delay
}

// List returns every book in insertion order.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// GetByISBN returns a book by its ISBN.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

// FindByAuthor returns ErrNotFound rather than an empty result.
func (s *Service) FindByAuthor(ctx context.Context, author string) ([]Book, error) {
	return nonEmpty(s.repo.FindByAuthor(ctx, author))
}

// FindByTitle returns ErrNotFound rather than an empty result.
func (s *Service) FindByTitle(ctx context.Context, title string) ([]Book, error) {
	return nonEmpty(s.repo.FindByTitle(ctx, title))
}

func (s *Service) GetReview(ctx context.Context, isbn string) (Review, error) {
	b, err := s.repo.GetByISBN(ctx, isbn)
	if err != nil {
		return Review{}, err
	}
	review := b.Review
	if review == "" {
		review = NoReviewPlaceholder
	}
	return Review{Title: b.Title, Review: review}, nil
}

// UpdateReview replaces whatever review the book had with "<username>: <review>".
func (s *Service) UpdateReview(ctx context.Context, isbn, username, review string) (Book, error) {
	return s.repo.SetReview(ctx, isbn, username+": "+review)
}

func (s *Service) DeleteReview(ctx context.Context, isbn string) (Book, error) {
	return s.repo.SetReview(ctx, isbn, "")
}

// ListDelayed is List answered after the service delay.
func (s *Service) ListDelayed(ctx context.Context) ([]Book, error) {
	return async.Await(s.delay, func() ([]Book, error) { return s.List(ctx) })
}

func (s *Service) GetByISBNDelayed(ctx context.Context, isbn string) (Book, error) {
	return async.Await(s.delay, func() (Book, error) { return s.GetByISBN(ctx, isbn) })
}

func (s *Service) FindByAuthorDelayed(ctx context.Context, author string) ([]Book, error) {
	return async.Await(s.delay, func() ([]Book, error) { return s.FindByAuthor(ctx, author) })
}

func (s *Service) FindByTitleDelayed(ctx context.Context, title string) ([]Book, error) {
	return async.Await(s.delay, func() ([]Book, error) { return s.FindByTitle(ctx, title) })
}

func nonEmpty(books []Book, err error) ([]Book, error) {
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNotFound
	}
	return books, nil
}
