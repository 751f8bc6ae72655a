package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"bookstore/internal/book"
	"bookstore/internal/platform/openlibrary"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

func newApp() *cli.App {
	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   "-",
		Usage:   "file to write the JSON seed to (- for stdout)",
	}

	return &cli.App{
		Name:  "seed",
		Usage: "write a JSON book catalog usable as SEED_FILE",
		Commands: []*cli.Command{
			{
				Name:  "default",
				Usage: "the built-in three-book catalog",
				Flags: []cli.Flag{outputFlag},
				Action: func(c *cli.Context) error {
					return writeSeed(c, book.DefaultSeed())
				},
			},
			{
				Name:  "generate",
				Usage: "synthetic books with random titles and authors",
				Flags: []cli.Flag{
					outputFlag,
					&cli.IntFlag{Name: "count", Value: 1000, Usage: "number of books"},
					&cli.Int64Flag{Name: "rand-seed", Value: 0, Usage: "random seed (0 uses the clock)"},
				},
				Action: func(c *cli.Context) error {
					seed := c.Int64("rand-seed")
					if seed == 0 {
						seed = time.Now().UnixNano()
					}
					books := generateBooks(rand.New(rand.NewSource(seed)), c.Int("count"))
					log.Printf("generated %d books", len(books))
					return writeSeed(c, books)
				},
			},
			{
				Name:  "openlibrary",
				Usage: "books from an Open Library subject search",
				Flags: []cli.Flag{
					outputFlag,
					&cli.StringFlag{Name: "subject", Required: true, Usage: "subject to search for"},
					&cli.IntFlag{Name: "limit", Value: 50, Usage: "maximum search results"},
					&cli.StringFlag{Name: "base-url", Value: openlibrary.DefaultBaseURL, Usage: "Open Library host"},
				},
				Action: func(c *cli.Context) error {
					client := openlibrary.NewClient("bookstore-seed/1.0", 1, 3,
						openlibrary.WithBaseURL(c.String("base-url")))
					books, err := fetchOpenLibrary(c.Context, client, c.String("subject"), c.Int("limit"))
					if err != nil {
						return err
					}
					log.Printf("fetched %d books for subject %q", len(books), c.String("subject"))
					return writeSeed(c, books)
				},
			},
		},
	}
}

var (
	titleWords = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	firstNames = []string{"Ada", "Ben", "Chloe", "Dmitri", "Elena", "Farah", "Goro", "Hana", "Ivan", "Jade"}
	lastNames  = []string{"Okafor", "Lindqvist", "Moreau", "Tanaka", "Alvarez", "Kowalski", "Nguyen", "Brennan"}
)

func generateBooks(rng *rand.Rand, count int) []book.Book {
	books := make([]book.Book, 0, count)
	for i := 0; i < count; i++ {
		books = append(books, book.Book{
			ID:     i + 1,
			Title:  fmt.Sprintf("The %s of %s", pick(rng, titleWords), pick(rng, titleWords)),
			Author: pick(rng, firstNames) + " " + pick(rng, lastNames),
			ISBN:   fmt.Sprintf("978-%08d", i+1),
		})
	}
	return books
}

func pick(rng *rand.Rand, words []string) string {
	return words[rng.Intn(len(words))]
}

type searcher interface {
	SearchBySubject(ctx context.Context, subject string, limit int) (*openlibrary.SearchResponse, error)
}

// fetchOpenLibrary keeps search results that carry an ISBN, skipping ISBNs
// already taken by an earlier result.
func fetchOpenLibrary(ctx context.Context, client searcher, subject string, limit int) ([]book.Book, error) {
	res, err := client.SearchBySubject(ctx, subject, limit)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", subject, err)
	}

	seen := make(map[string]bool)
	var books []book.Book
	for _, doc := range res.Docs {
		if len(doc.ISBN) == 0 || doc.Title == "" || seen[doc.ISBN[0]] {
			continue
		}
		seen[doc.ISBN[0]] = true
		books = append(books, book.Book{
			Title:  doc.Title,
			Author: strings.Join(doc.AuthorNames, ", "),
			ISBN:   doc.ISBN[0],
		})
	}
	book.AssignIDs(books)
	return books, nil
}

func writeSeed(c *cli.Context, books []book.Book) error {
	out := c.String("output")
	if out == "-" || out == "" {
		return encodeBooks(c.App.Writer, books)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := encodeBooks(f, books); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func encodeBooks(w io.Writer, books []book.Book) error {
	if books == nil {
		books = []book.Book{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(books)
}
