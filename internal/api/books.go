package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bookwise/bookwise-cli/internal/entities"
)

const (
	fallbackBooks           = "Error fetching books."
	fallbackBookDetails     = "Error fetching book details."
	fallbackCategories      = "Error fetching categories."
	fallbackLikedBooks      = "Error fetching liked books."
	fallbackLike            = "Error liking the book."
	fallbackUnlike          = "Error removing the like."
	fallbackReviews         = "Error fetching reviews."
	fallbackSubmitReview    = "Error submitting the rating."
	fallbackSuggestions     = "Error fetching AI suggestions."
	fallbackRecommendations = "Error fetching recommendations."
)

// GetBooks fetches one page of the catalog. An empty category means no
// filtering and is omitted from the query entirely.
func (c *Client) GetBooks(ctx context.Context, page, limit int, category string) ([]entities.Book, error) {
	if page < 1 || limit < 1 {
		return nil, validationError("Page and limit must be positive")
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if category != "" {
		query.Set("category", category)
	}
	var books []entities.Book
	if err := c.do(ctx, http.MethodGet, "/books", query, nil, &books, fallbackBooks); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook fetches a single book by its isbn13.
func (c *Client) GetBook(ctx context.Context, isbn13 string) (*entities.Book, error) {
	if isbn13 == "" {
		return nil, validationError("ISBN13 is required")
	}
	var book entities.Book
	path := fmt.Sprintf("/book/%s", url.PathEscape(isbn13))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &book, fallbackBookDetails); err != nil {
		return nil, err
	}
	return &book, nil
}

// GetCategoriesWithBookCount fetches every category with its book count.
func (c *Client) GetCategoriesWithBookCount(ctx context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	if err := c.do(ctx, http.MethodGet, "/categories/with-book-count", nil, nil, &categories, fallbackCategories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetTopCategories fetches the server-side ranking of the largest categories.
func (c *Client) GetTopCategories(ctx context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	if err := c.do(ctx, http.MethodGet, "/books/top-categories", nil, nil, &categories, fallbackCategories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetAllCategories fetches the plain category list, without counts.
func (c *Client) GetAllCategories(ctx context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	if err := c.do(ctx, http.MethodGet, "/books/categories", nil, nil, &categories, fallbackCategories); err != nil {
		return nil, err
	}
	return categories, nil
}

type likedBooksResponse struct {
	UserID     entities.UserID `json:"user_id"`
	LikedBooks []entities.Book `json:"liked_books"`
}

// GetLikedBooks fetches the user's liked books. A user with no likes yet is
// a valid empty state: the server's 404 is normalized to an empty list, not
// an error.
func (c *Client) GetLikedBooks(ctx context.Context, userID entities.UserID) ([]entities.Book, error) {
	if userID == "" {
		return nil, validationError("User id is required")
	}
	var resp likedBooksResponse
	path := fmt.Sprintf("/books/liked/%s", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp, fallbackLikedBooks); err != nil {
		if IsNotFound(err) {
			return []entities.Book{}, nil
		}
		return nil, err
	}
	if resp.LikedBooks == nil {
		return []entities.Book{}, nil
	}
	return resp.LikedBooks, nil
}

type likeRequest struct {
	ISBN13 string `json:"isbn13"`
}

// LikeBook marks a book as liked. The server treats a duplicate like as a
// no-op; the caller guards its local state with an idempotent append.
func (c *Client) LikeBook(ctx context.Context, userID entities.UserID, isbn13 string) error {
	if userID == "" {
		return validationError("User id is required")
	}
	if isbn13 == "" {
		return validationError("ISBN13 is required")
	}
	path := fmt.Sprintf("/books/liked/%s", userID)
	return c.do(ctx, http.MethodPost, path, nil, likeRequest{ISBN13: isbn13}, &messageResponse{}, fallbackLike)
}

// UnlikeBook removes a like.
func (c *Client) UnlikeBook(ctx context.Context, userID entities.UserID, isbn13 string) error {
	if userID == "" {
		return validationError("User id is required")
	}
	if isbn13 == "" {
		return validationError("ISBN13 is required")
	}
	path := fmt.Sprintf("/books/liked/%s", userID)
	return c.do(ctx, http.MethodDelete, path, nil, likeRequest{ISBN13: isbn13}, &messageResponse{}, fallbackUnlike)
}

type reviewsResponse struct {
	UserID  entities.UserID   `json:"user_id"`
	Reviews []entities.Review `json:"reviews"`
}

// GetUserReviews fetches every review the user has submitted. Like liked
// books, "no reviews yet" is normalized to an empty list.
func (c *Client) GetUserReviews(ctx context.Context, userID entities.UserID) ([]entities.Review, error) {
	if userID == "" {
		return nil, validationError("User id is required")
	}
	var resp reviewsResponse
	path := fmt.Sprintf("/books/review/user/%s", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp, fallbackReviews); err != nil {
		if IsNotFound(err) {
			return []entities.Review{}, nil
		}
		return nil, err
	}
	if resp.Reviews == nil {
		return []entities.Review{}, nil
	}
	return resp.Reviews, nil
}

type submitReviewRequest struct {
	ISBN13 string `json:"isbn13"`
	Rating int    `json:"rating"`
}

// SubmitReview submits a star rating for a book. The server upserts: at
// most one review per (user, book) pair, so re-issuing is safe. Returns the
// stored review.
func (c *Client) SubmitReview(ctx context.Context, userID entities.UserID, isbn13 string, rating int) (*entities.Review, error) {
	if userID == "" {
		return nil, validationError("User id is required")
	}
	if isbn13 == "" {
		return nil, validationError("ISBN13 is required")
	}
	if rating < 1 || rating > 5 {
		return nil, validationError("Rating must be between 1 and 5")
	}
	var resp reviewsResponse
	path := fmt.Sprintf("/books/review/user/%s", userID)
	body := submitReviewRequest{ISBN13: isbn13, Rating: rating}
	if err := c.do(ctx, http.MethodPost, path, nil, body, &resp, fallbackSubmitReview); err != nil {
		return nil, err
	}
	if len(resp.Reviews) == 0 {
		return nil, transportError()
	}
	return &resp.Reviews[0], nil
}

// GetAISuggestions fetches recommendations for the user, optionally scoped
// to one category.
func (c *Client) GetAISuggestions(ctx context.Context, userID entities.UserID, category string) ([]entities.Book, error) {
	if userID == "" {
		return nil, validationError("User id is required")
	}
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	var books []entities.Book
	path := fmt.Sprintf("/api/ai-suggestions/%s", userID)
	if err := c.do(ctx, http.MethodGet, path, query, nil, &books, fallbackSuggestions); err != nil {
		return nil, err
	}
	return books, nil
}

// GetRecommendations fetches the precomputed recommendation list.
func (c *Client) GetRecommendations(ctx context.Context) ([]entities.Recommendation, error) {
	var recs []entities.Recommendation
	if err := c.do(ctx, http.MethodGet, "/books/recommendations", nil, nil, &recs, fallbackRecommendations); err != nil {
		return nil, err
	}
	return recs, nil
}
