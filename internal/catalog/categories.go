// Package catalog contains the pure derivations the views are built from:
// category orderings and the liked-books list reducer. Nothing here touches
// the network or any store.
package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bookwise/bookwise-cli/internal/entities"
)

// Alphabetical returns the categories ordered by name using locale-aware
// collation, for the selector control. The input is left untouched.
func Alphabetical(categories []entities.Category) []entities.Category {
	out := make([]entities.Category, len(categories))
	copy(out, categories)

	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// TopByBookCount returns the n largest categories, descending by book
// count. Ties keep the input order; there is no secondary sort key. The
// input is left untouched.
func TopByBookCount(categories []entities.Category, n int) []entities.Category {
	out := make([]entities.Category, len(categories))
	copy(out, categories)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BookCount > out[j].BookCount
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
