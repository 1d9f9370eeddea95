package catalog

import "github.com/bookwise/bookwise-cli/internal/entities"

// LikeEvent is a confirmed like or unlike of one book. Callers construct it
// only after the server acknowledged the action; the reducer never runs on
// speculative state.
type LikeEvent struct {
	ISBN13 string
	Liked  bool
}

// ApplyLikeEvent returns the liked list after applying one confirmed event.
// A like appends a minimal record unless the isbn13 is already present, so
// duplicate events cannot double-add. An unlike removes every matching
// record. The input slice is not modified.
func ApplyLikeEvent(list []entities.Book, ev LikeEvent) []entities.Book {
	if ev.Liked {
		for _, book := range list {
			if book.ISBN13 == ev.ISBN13 {
				return list
			}
		}
		out := make([]entities.Book, len(list), len(list)+1)
		copy(out, list)
		return append(out, entities.Book{ISBN13: ev.ISBN13})
	}

	out := make([]entities.Book, 0, len(list))
	for _, book := range list {
		if book.ISBN13 != ev.ISBN13 {
			out = append(out, book)
		}
	}
	return out
}

// LikedISBNs projects a liked list down to its isbn13 values.
func LikedISBNs(list []entities.Book) []string {
	out := make([]string, 0, len(list))
	for _, book := range list {
		out = append(out, book.ISBN13)
	}
	return out
}
