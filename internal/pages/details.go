package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bookwise/bookwise-cli/internal/api"
	"github.com/bookwise/bookwise-cli/internal/entities"
	"github.com/bookwise/bookwise-cli/internal/session"
)

// DetailsResult is everything the details view renders for one book.
type DetailsResult struct {
	Book       *entities.Book
	UserRating int  // 0 when the user has not rated the book
	Liked      bool // Whether the book is in the user's liked set
}

// LoadDetails fetches one book plus the session user's relationship to it.
// The book fetch resolves first; the review and liked lookups depend only
// on the identity and run concurrently after it. Both degrade gracefully:
// a signed-out or failed lookup leaves rating 0 and liked false.
func LoadDetails(ctx context.Context, client *api.Client, sessions session.Store, isbn13 string) (*DetailsResult, error) {
	book, err := client.GetBook(ctx, isbn13)
	if err != nil {
		return nil, err
	}

	result := &DetailsResult{Book: book}

	user, err := sessions.Load()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return result, nil
	}

	userID := user.UserID
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		reviews, err := client.GetUserReviews(gctx, userID)
		if err != nil {
			return nil
		}
		for _, review := range reviews {
			if review.ISBN13 == isbn13 {
				result.UserRating = review.UserRating
				break
			}
		}
		return nil
	})
	g.Go(func() error {
		liked, err := client.GetLikedBooks(gctx, userID)
		if err != nil {
			return nil
		}
		for _, b := range liked {
			if b.ISBN13 == isbn13 {
				result.Liked = true
				break
			}
		}
		return nil
	})
	_ = g.Wait()

	return result, nil
}

// SubmitRating records the user's star rating for a book and returns the
// stored rating. The server upserts, so re-rating replaces the old value.
func SubmitRating(ctx context.Context, client *api.Client, sessions session.Store, isbn13 string, rating int) (int, error) {
	user, err := currentUser(sessions)
	if err != nil {
		return 0, err
	}
	review, err := client.SubmitReview(ctx, user.UserID, isbn13, rating)
	if err != nil {
		return 0, err
	}
	return review.UserRating, nil
}
