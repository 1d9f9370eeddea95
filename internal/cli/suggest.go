package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bookwise/bookwise-cli/internal/pages"
)

// SuggestCommand fetches AI-powered book suggestions for the signed-in user.
type SuggestCommand struct {
	Category string
}

func NewSuggestCommand() *SuggestCommand {
	return &SuggestCommand{}
}

func (cmd *SuggestCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	fs.StringVar(&cmd.Category, "category", "", "Category to draw suggestions from")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s suggest [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Get AI-powered book suggestions.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SuggestCommand) Run() error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := env.sessions.Load()
	if err != nil {
		return err
	}
	if user == nil {
		return pages.ErrNoSession
	}

	books, err := env.client.GetAISuggestions(context.Background(), user.UserID, cmd.Category)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		fmt.Println("No suggestions available.")
		return nil
	}
	printBookList(books)
	return nil
}

// AuthorCommand lists catalog books by one author.
type AuthorCommand struct {
	Name string
}

func NewAuthorCommand() *AuthorCommand {
	return &AuthorCommand{}
}

func (cmd *AuthorCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("author", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s author <name>\n\nList books credited to an author.\n", os.Args[0])
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one author name argument (quote multi-word names)")
	}
	cmd.Name = fs.Arg(0)
	return nil
}

func (cmd *AuthorCommand) Run() error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	books, err := pages.LoadAuthor(context.Background(), env.client, cmd.Name)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		fmt.Printf("No books found for %q.\n", cmd.Name)
		return nil
	}
	printBookList(books)
	return nil
}
