package book

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepo keeps the catalog in process memory, in insertion order.
// Every method hands out copies; stored records change only through SetReview.
type MemoryRepo struct {
	mu    sync.RWMutex
	books []Book
}

func NewMemoryRepo(seed []Book) *MemoryRepo {
	books := make([]Book, len(seed))
	copy(books, seed)
	return &MemoryRepo{books: books}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *MemoryRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(isbn); i >= 0 {
		return r.books[i], nil
	}
	return Book{}, ErrNotFound
}

// FindByAuthor matches the whole author name, ignoring case.
func (r *MemoryRepo) FindByAuthor(ctx context.Context, author string) ([]Book, error) {
	return r.filter(func(b Book) bool { return strings.EqualFold(b.Author, author) }), nil
}

// FindByTitle matches the whole title, ignoring case.
func (r *MemoryRepo) FindByTitle(ctx context.Context, title string) ([]Book, error) {
	return r.filter(func(b Book) bool { return strings.EqualFold(b.Title, title) }), nil
}

func (r *MemoryRepo) SetReview(ctx context.Context, isbn, review string) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(isbn)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	r.books[i].Review = review
	return r.books[i], nil
}

func (r *MemoryRepo) filter(match func(Book) bool) []Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Book
	for _, b := range r.books {
		if match(b) {
			out = append(out, b)
		}
	}
	return out
}

// indexOf must be called with r.mu held.
func (r *MemoryRepo) indexOf(isbn string) int {
	for i, b := range r.books {
		if b.ISBN == isbn {
			return i
		}
	}
	return -1
}
