package pages

import (
	"context"

	"github.com/bookwise/bookwise-cli/internal/api"
	"github.com/bookwise/bookwise-cli/internal/entities"
)

const (
	// authorScanPageSize and authorScanMaxPages bound the catalog scan; the
	// API has no author filter, so the author view pages through /books and
	// matches client-side.
	authorScanPageSize = 50
	authorScanMaxPages = 20
)

// LoadAuthor returns the catalog books credited to the given author.
func LoadAuthor(ctx context.Context, client *api.Client, authorName string) ([]entities.Book, error) {
	var matches []entities.Book
	for page := 1; page <= authorScanMaxPages; page++ {
		books, err := client.GetBooks(ctx, page, authorScanPageSize, "")
		if err != nil {
			return nil, err
		}
		for _, book := range books {
			if book.Authors.Contains(authorName) {
				matches = append(matches, book)
			}
		}
		if len(books) < authorScanPageSize {
			break
		}
	}
	return matches, nil
}
