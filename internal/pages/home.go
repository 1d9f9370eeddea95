package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bookwise/bookwise-cli/internal/api"
	"github.com/bookwise/bookwise-cli/internal/catalog"
	"github.com/bookwise/bookwise-cli/internal/entities"
	"github.com/bookwise/bookwise-cli/internal/session"
)

// HomeParams are the declared inputs of the home view.
type HomeParams struct {
	Page      int
	Limit     int
	Category  string
	AIPowered bool // Use AI suggestions instead of the paged list (needs a category and a session)
	TopCount  int  // Number of quick-filter categories, 7 in the stock UI
}

// HomeResult is everything the home view renders.
type HomeResult struct {
	Books         []entities.Book
	AISuggestions bool // Books came from the recommender rather than the catalog
	Categories    []entities.Category
	Alphabetical  []entities.Category
	TopCategories []entities.Category
	LikedISBNs    []string
}

// LoadHome fetches the home view's data. The category list and the liked
// set are independent and fetched concurrently; both degrade to empty on
// failure, as the view is still usable without them. The book list is the
// page's purpose and its failure is the loader's failure.
func LoadHome(ctx context.Context, client *api.Client, sessions session.Store, params HomeParams) (*HomeResult, error) {
	user, err := sessions.Load()
	if err != nil {
		return nil, err
	}

	result := &HomeResult{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if categories, err := client.GetCategoriesWithBookCount(gctx); err == nil {
			result.Categories = categories
		}
		return nil
	})
	if user != nil {
		userID := user.UserID
		g.Go(func() error {
			if liked, err := client.GetLikedBooks(gctx, userID); err == nil {
				result.LikedISBNs = catalog.LikedISBNs(liked)
			}
			return nil
		})
	}
	g.Go(func() error {
		if params.AIPowered && params.Category != "" && user != nil {
			books, err := client.GetAISuggestions(gctx, user.UserID, params.Category)
			if err != nil {
				return err
			}
			result.Books = books
			result.AISuggestions = true
			return nil
		}
		books, err := client.GetBooks(gctx, params.Page, params.Limit, params.Category)
		if err != nil {
			return err
		}
		result.Books = books
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Alphabetical = catalog.Alphabetical(result.Categories)
	result.TopCategories = catalog.TopByBookCount(result.Categories, params.TopCount)
	return result, nil
}
