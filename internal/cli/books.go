package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bookwise/bookwise-cli/internal/catalog"
	"github.com/bookwise/bookwise-cli/internal/entities"
	"github.com/bookwise/bookwise-cli/internal/pages"
)

// catalogView picks the derived view the command renders: the top-N ranking
// or the full alphabetical list.
func catalogView(top bool, categories []entities.Category, topCount int) []entities.Category {
	if top {
		return catalog.TopByBookCount(categories, topCount)
	}
	return catalog.Alphabetical(categories)
}

// BooksCommand lists a page of the catalog, optionally filtered by category.
type BooksCommand struct {
	Page      int
	Limit     int
	Category  string
	AIPowered bool
}

func NewBooksCommand() *BooksCommand {
	return &BooksCommand{}
}

func (cmd *BooksCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("books", flag.ExitOnError)
	fs.IntVar(&cmd.Page, "page", 1, "Page number")
	fs.IntVar(&cmd.Limit, "limit", 0, "Books per page (defaults to the configured page size)")
	fs.StringVar(&cmd.Category, "category", "", "Filter by category")
	fs.BoolVar(&cmd.AIPowered, "ai", false, "Use AI suggestions for the selected category (requires sign-in)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s books [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Browse the book catalog.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.AIPowered && cmd.Category == "" {
		return fmt.Errorf("-ai requires -category")
	}
	return nil
}

func (cmd *BooksCommand) Run() error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	limit := cmd.Limit
	if limit == 0 {
		limit = env.cfg.Catalog.PageSize
	}

	result, err := pages.LoadHome(context.Background(), env.client, env.sessions, pages.HomeParams{
		Page:      cmd.Page,
		Limit:     limit,
		Category:  cmd.Category,
		AIPowered: cmd.AIPowered,
		TopCount:  env.cfg.Catalog.TopCategories,
	})
	if err != nil {
		return err
	}

	if result.AISuggestions {
		fmt.Printf("AI suggestions for %q:\n", cmd.Category)
	} else {
		fmt.Printf("Page %d:\n", cmd.Page)
	}
	printBookList(result.Books)

	if len(result.TopCategories) > 0 {
		fmt.Println("\nTop categories:")
		for _, category := range result.TopCategories {
			fmt.Printf("  %s (%d)\n", category.Name, category.BookCount)
		}
	}
	return nil
}

// BookCommand shows one book in detail.
type BookCommand struct {
	ISBN13 string
}

func NewBookCommand() *BookCommand {
	return &BookCommand{}
}

func (cmd *BookCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s book <isbn13>\n\nShow details for one book.\n", os.Args[0])
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one isbn13 argument")
	}
	cmd.ISBN13 = fs.Arg(0)
	return nil
}

func (cmd *BookCommand) Run() error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	result, err := pages.LoadDetails(context.Background(), env.client, env.sessions, cmd.ISBN13)
	if err != nil {
		return err
	}

	book := result.Book
	fmt.Printf("%s\n", book.Title)
	if book.Subtitle != "" {
		fmt.Printf("%s\n", book.Subtitle)
	}
	fmt.Printf("\nAuthors:        %s\n", book.Authors)
	fmt.Printf("Categories:     %s\n", book.Categories)
	fmt.Printf("Published:      %d\n", book.PublishedYear)
	fmt.Printf("Pages:          %d\n", book.NumPages)
	fmt.Printf("Average rating: %.2f (%d ratings)\n", book.AverageRating, book.RatingsCount)
	fmt.Printf("ISBN13:         %s\n", book.ISBN13)
	if book.Description != "" {
		fmt.Printf("\n%s\n", book.Description)
	}
	if result.Liked {
		fmt.Println("\n♥ In your liked books")
	}
	if result.UserRating > 0 {
		fmt.Printf("Your rating: %d/5\n", result.UserRating)
	}
	return nil
}

// CategoriesCommand lists categories, alphabetically or by size.
type CategoriesCommand struct {
	Top bool
}

func NewCategoriesCommand() *CategoriesCommand {
	return &CategoriesCommand{}
}

func (cmd *CategoriesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("categories", flag.ExitOnError)
	fs.BoolVar(&cmd.Top, "top", false, "Show only the largest categories")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s categories [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List catalog categories with book counts.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	return fs.Parse(args)
}

func (cmd *CategoriesCommand) Run() error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := context.Background()
	categories, err := env.client.GetCategoriesWithBookCount(ctx)
	if err != nil {
		return err
	}

	view := catalogView(cmd.Top, categories, env.cfg.Catalog.TopCategories)
	for _, category := range view {
		fmt.Printf("%-40s %d\n", category.Name, category.BookCount)
	}
	return nil
}
