package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bookwise/bookwise-cli/internal/pages"
)

// FavoritesCommand lists the signed-in user's liked books.
type FavoritesCommand struct{}

func NewFavoritesCommand() *FavoritesCommand {
	return &FavoritesCommand{}
}

func (cmd *FavoritesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("favorites", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s favorites\n\nList your liked books.\n", os.Args[0])
	}
	return fs.Parse(args)
}

func (cmd *FavoritesCommand) Run() error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	favorites, err := pages.LoadFavorites(context.Background(), env.client, env.sessions)
	if err != nil {
		return err
	}

	books := favorites.Books()
	if len(books) == 0 {
		fmt.Println("You haven't liked any books yet.")
		return nil
	}
	printBookList(books)
	return nil
}

// LikeCommand adds a book to the liked set.
type LikeCommand struct {
	ISBN13 string
}

func NewLikeCommand() *LikeCommand {
	return &LikeCommand{}
}

func (cmd *LikeCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("like", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s like <isbn13>\n\nAdd a book to your liked books.\n", os.Args[0])
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

func (cmd *LikeCommand) Run() error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := context.Background()
	favorites, err := pages.LoadFavorites(ctx, env.client, env.sessions)
	if err != nil {
		return err
	}
	if err := favorites.Like(ctx, cmd.ISBN13); err != nil {
		return err
	}
	fmt.Println("Book liked!")
	return nil
}

// UnlikeCommand removes a book from the liked set.
type UnlikeCommand struct {
	ISBN13 string
}

func NewUnlikeCommand() *UnlikeCommand {
	return &UnlikeCommand{}
}

func (cmd *UnlikeCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("unlike", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s unlike <isbn13>\n\nRemove a book from your liked books.\n", os.Args[0])
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

func (cmd *UnlikeCommand) Run() error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := context.Background()
	favorites, err := pages.LoadFavorites(ctx, env.client, env.sessions)
	if err != nil {
		return err
	}
	if err := favorites.Unlike(ctx, cmd.ISBN13); err != nil {
		return err
	}
	fmt.Println("Book unliked!")
	return nil
}
