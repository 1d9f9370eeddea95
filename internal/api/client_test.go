package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bookwise/bookwise-cli/internal/entities"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return New(server.URL, 5*time.Second), server
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)

		if body["username"] == "alice" && body["password"] == "secret" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"Login successful","user":{"user_id":7,"username":"alice","email":"alice@example.com"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		user, err := client.Login(ctx, "alice", "secret")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if user.UserID != "7" {
			t.Errorf("user_id = %q, expected %q", user.UserID, "7")
		}
		if user.Username != "alice" {
			t.Errorf("username = %q, expected %q", user.Username, "alice")
		}
	})

	t.Run("bad credentials surface the server message verbatim", func(t *testing.T) {
		_, err := client.Login(ctx, "alice", "wrong")
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "Invalid credentials" {
			t.Errorf("message = %q, expected %q", err.Error(), "Invalid credentials")
		}
		if KindOf(err) != KindValidation {
			t.Errorf("kind = %v, expected KindValidation", KindOf(err))
		}
	})

	t.Run("empty input rejected locally", func(t *testing.T) {
		_, err := client.Login(ctx, "", "")
		if KindOf(err) != KindValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestGetBooksQuery(t *testing.T) {
	var gotQuery string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx := context.Background()

	t.Run("category included when set", func(t *testing.T) {
		_, err := client.GetBooks(ctx, 2, 16, "Fiction")
		if err != nil {
			t.Fatalf("GetBooks failed: %v", err)
		}
		if gotQuery != "category=Fiction&limit=16&page=2" {
			t.Errorf("query = %q", gotQuery)
		}
	})

	t.Run("empty category omitted entirely", func(t *testing.T) {
		_, err := client.GetBooks(ctx, 1, 50, "")
		if err != nil {
			t.Fatalf("GetBooks failed: %v", err)
		}
		if gotQuery != "limit=50&page=1" {
			t.Errorf("query = %q", gotQuery)
		}
	})

	t.Run("non-positive pagination rejected", func(t *testing.T) {
		if _, err := client.GetBooks(ctx, 0, 16, ""); KindOf(err) != KindValidation {
			t.Errorf("page=0: expected validation error, got %v", err)
		}
		if _, err := client.GetBooks(ctx, 1, -1, ""); KindOf(err) != KindValidation {
			t.Errorf("limit=-1: expected validation error, got %v", err)
		}
	})
}

func TestGetBooksFallbackMessage(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := client.GetBooks(context.Background(), 1, 16, "")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Error fetching books." {
		t.Errorf("message = %q", err.Error())
	}
	if KindOf(err) != KindServer {
		t.Errorf("kind = %v, expected KindServer", KindOf(err))
	}
}

func TestGetLikedBooksNotFoundIsEmpty(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"No liked books found for this user."}`))
	}))
	defer server.Close()

	liked, err := client.GetLikedBooks(context.Background(), "42")
	if err != nil {
		t.Fatalf("expected empty result, got error: %v", err)
	}
	if liked == nil || len(liked) != 0 {
		t.Errorf("liked = %v, expected empty slice", liked)
	}
}

func TestGetUserReviewsNotFoundIsEmpty(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	reviews, err := client.GetUserReviews(context.Background(), "42")
	if err != nil {
		t.Fatalf("expected empty result, got error: %v", err)
	}
	if reviews == nil || len(reviews) != 0 {
		t.Errorf("reviews = %v, expected empty slice", reviews)
	}
}

func TestGetBookNotFoundIsAnError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Book not found"}`))
	}))
	defer server.Close()

	_, err := client.GetBook(context.Background(), "0000000000000")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if err.Error() != "Book not found" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestLikeBookRequest(t *testing.T) {
	var gotMethod, gotPath, gotISBN string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotISBN = body["isbn13"]
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"liked"}`))
	}))
	defer server.Close()

	if err := client.LikeBook(context.Background(), "7", "9780140449136"); err != nil {
		t.Fatalf("LikeBook failed: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/books/liked/7" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if gotISBN != "9780140449136" {
		t.Errorf("isbn13 = %q", gotISBN)
	}
}

func TestSubmitReview(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reviews":[{"isbn13":"9780140449136","title":"The Odyssey","user_rating":4}]}`))
	}))
	defer server.Close()

	ctx := context.Background()

	review, err := client.SubmitReview(ctx, "7", "9780140449136", 4)
	if err != nil {
		t.Fatalf("SubmitReview failed: %v", err)
	}
	if review.UserRating != 4 {
		t.Errorf("user_rating = %d, expected 4", review.UserRating)
	}

	t.Run("rating bounds enforced locally", func(t *testing.T) {
		if _, err := client.SubmitReview(ctx, "7", "9780140449136", 0); KindOf(err) != KindValidation {
			t.Errorf("rating 0: expected validation error, got %v", err)
		}
		if _, err := client.SubmitReview(ctx, "7", "9780140449136", 6); KindOf(err) != KindValidation {
			t.Errorf("rating 6: expected validation error, got %v", err)
		}
	})
}

func TestGetAISuggestionsPath(t *testing.T) {
	var gotPath, gotQuery string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := client.GetAISuggestions(context.Background(), "7", "Fiction")
	if err != nil {
		t.Fatalf("GetAISuggestions failed: %v", err)
	}
	if gotPath != "/api/ai-suggestions/7" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "category=Fiction" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestCategoryAndRecommendationRoutes(t *testing.T) {
	var gotPath string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/books/top-categories", "/books/categories":
			_, _ = w.Write([]byte(`[{"category":"Fiction","book_count":300}]`))
		case "/books/recommendations":
			_, _ = w.Write([]byte(`[{"isbn13":"9780140449136","title":"The Odyssey","similarity_score":0.92,"recommendation_basis":"liked books"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	ctx := context.Background()

	categories, err := client.GetTopCategories(ctx)
	if err != nil || gotPath != "/books/top-categories" {
		t.Fatalf("GetTopCategories: path=%q err=%v", gotPath, err)
	}
	if len(categories) != 1 || categories[0].Name != "Fiction" {
		t.Errorf("categories = %v", categories)
	}

	if _, err := client.GetAllCategories(ctx); err != nil || gotPath != "/books/categories" {
		t.Fatalf("GetAllCategories: path=%q err=%v", gotPath, err)
	}

	recs, err := client.GetRecommendations(ctx)
	if err != nil || gotPath != "/books/recommendations" {
		t.Fatalf("GetRecommendations: path=%q err=%v", gotPath, err)
	}
	if len(recs) != 1 || recs[0].SimilarityScore != 0.92 {
		t.Errorf("recs = %v", recs)
	}
}

func TestTransportFailure(t *testing.T) {
	// Point at a server that is already closed.
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := New(url, 2*time.Second)
	_, err := client.GetBooks(context.Background(), 1, 16, "")
	if KindOf(err) != KindTransport {
		t.Fatalf("expected transport error, got %v", err)
	}
	if err.Error() != "An error occurred." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestUpdateUserReturnsFullIdentity(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/update-user/7" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"User information updated successfully","user":{"user_id":7,"username":"alice2","email":"alice2@example.com"}}`))
	}))
	defer server.Close()

	user, err := client.UpdateUser(context.Background(), "7", UpdateUserParams{
		Username:        "alice2",
		Email:           "alice2@example.com",
		CurrentPassword: "secret",
	})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	want := entities.User{UserID: "7", Username: "alice2", Email: "alice2@example.com"}
	if *user != want {
		t.Errorf("user = %+v, expected %+v", *user, want)
	}
}
