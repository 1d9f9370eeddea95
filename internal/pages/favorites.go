package pages

import (
	"context"

	"github.com/bookwise/bookwise-cli/internal/api"
	"github.com/bookwise/bookwise-cli/internal/catalog"
	"github.com/bookwise/bookwise-cli/internal/entities"
	"github.com/bookwise/bookwise-cli/internal/session"
)

// Favorites is the liked-books view: the fetched list plus the mutations
// that keep it consistent with the server without a refetch. Local state
// only changes after the server confirms an action; a failed call leaves
// the list untouched.
type Favorites struct {
	client *api.Client
	userID entities.UserID
	books  []entities.Book
}

// LoadFavorites fetches the session user's liked books. A user with no
// likes yet gets an empty, usable view.
func LoadFavorites(ctx context.Context, client *api.Client, sessions session.Store) (*Favorites, error) {
	user, err := currentUser(sessions)
	if err != nil {
		return nil, err
	}
	books, err := client.GetLikedBooks(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	return &Favorites{client: client, userID: user.UserID, books: books}, nil
}

// Books returns the current local liked list.
func (f *Favorites) Books() []entities.Book {
	return f.books
}

// Like marks a book as liked and, only on success, applies the event to the
// local list.
func (f *Favorites) Like(ctx context.Context, isbn13 string) error {
	if err := f.client.LikeBook(ctx, f.userID, isbn13); err != nil {
		return err
	}
	f.books = catalog.ApplyLikeEvent(f.books, catalog.LikeEvent{ISBN13: isbn13, Liked: true})
	return nil
}

// Unlike removes a like and, only on success, applies the event to the
// local list.
func (f *Favorites) Unlike(ctx context.Context, isbn13 string) error {
	if err := f.client.UnlikeBook(ctx, f.userID, isbn13); err != nil {
		return err
	}
	f.books = catalog.ApplyLikeEvent(f.books, catalog.LikeEvent{ISBN13: isbn13, Liked: false})
	return nil
}
