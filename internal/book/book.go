package book

import (
	"errors"
)

// ErrNotFound is returned when no book matches a lookup.
var ErrNotFound = errors.New("book not found")

// NoReviewPlaceholder is reported in place of an empty review.
const NoReviewPlaceholder = "No review yet"

// Book represents a catalog entry. Review is empty when nobody has reviewed it.
type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Review string `json:"review"`
}

// Review is the public view of a book's review.
type Review struct {
	Title  string `json:"title"`
	Review string `json:"review"`
}
