package book

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultSeed returns the catalog every process starts with.
func DefaultSeed() []Book {
	return []Book{
		{ID: 1, Title: "Harry Potter", Author: "J.K. Rowling", ISBN: "9780747532699"},
		{ID: 2, Title: "The Alchemist", Author: "Paulo Coelho", ISBN: "9780061122415"},
		{ID: 3, Title: "To Kill a Mockingbird", Author: "Harper Lee", ISBN: "9780060935467"},
	}
}

// LoadSeedFile reads a JSON array of books. Books without an id are numbered
// after the highest id present in the file.
func LoadSeedFile(path string) ([]Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}

	AssignIDs(books)
	return books, nil
}

// AssignIDs gives every book with a zero id the next free id, keeping order.
func AssignIDs(books []Book) {
	next := 0
	for _, b := range books {
		if b.ID > next {
			next = b.ID
		}
	}
	for i := range books {
		if books[i].ID == 0 {
			next++
			books[i].ID = next
		}
	}
}
