package entities

import (
	"encoding/json"
	"strings"
)

// AuthorList holds the authors of a book. The catalog stores authors either
// as a JSON array of names or as a single ';'-delimited string; both decode
// into an ordered list of names.
type AuthorList []string

func (a *AuthorList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var names []string
		if err := json.Unmarshal(data, &names); err != nil {
			return err
		}
		*a = splitAuthors(names)
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*a = splitAuthors([]string{joined})
	return nil
}

func splitAuthors(raw []string) AuthorList {
	var out AuthorList
	for _, name := range raw {
		for _, part := range strings.Split(name, ";") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Contains reports whether the list includes the given author name,
// ignoring case.
func (a AuthorList) Contains(name string) bool {
	for _, n := range a {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

func (a AuthorList) String() string {
	return strings.Join(a, ", ")
}

// Book is a catalog entry as returned by the API. Read-only from the
// client's perspective.
type Book struct {
	ISBN13        string     `json:"isbn13"`
	Title         string     `json:"title"`
	Subtitle      string     `json:"subtitle,omitempty"`
	Authors       AuthorList `json:"authors"`
	Categories    string     `json:"categories"`
	Thumbnail     string     `json:"thumbnail"`
	Description   string     `json:"description"`
	PublishedYear int        `json:"published_year"`
	AverageRating float64    `json:"average_rating"`
	NumPages      int        `json:"num_pages"`
	RatingsCount  int        `json:"ratings_count"`
}

// Category is a catalog category together with the number of books in it.
type Category struct {
	Name      string `json:"category"`
	BookCount int    `json:"book_count"`
}

// Review is a book the user has rated. The API returns the full book
// summary with the user's rating attached.
type Review struct {
	Book
	UserRating int `json:"user_rating"`
}

// Recommendation is a suggested book with the score and basis the
// recommender attached to it.
type Recommendation struct {
	Book
	SimilarityScore     float64 `json:"similarity_score"`
	RecommendationBasis string  `json:"recommendation_basis"`
}
