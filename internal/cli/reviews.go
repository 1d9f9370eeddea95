package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/bookwise/bookwise-cli/internal/pages"
)

// ReviewsCommand lists the signed-in user's ratings.
type ReviewsCommand struct{}

func NewReviewsCommand() *ReviewsCommand {
	return &ReviewsCommand{}
}

func (cmd *ReviewsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("reviews", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s reviews\n\nList the books you have rated.\n", os.Args[0])
	}
	return fs.Parse(args)
}

func (cmd *ReviewsCommand) Run() error {
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

	reviews, err := env.client.GetUserReviews(context.Background(), user.UserID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		fmt.Println("You haven't rated any books yet.")
		return nil
	}
	for _, review := range reviews {
		fmt.Printf("%d/5  ", review.UserRating)
		printBookLine(review.Book)
	}
	return nil
}

// RateCommand submits a star rating for one book.
type RateCommand struct {
	ISBN13 string
	Rating int
}

func NewRateCommand() *RateCommand {
	return &RateCommand{}
}

func (cmd *RateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("rate", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s rate <isbn13> <rating>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Rate a book from 1 to 5 stars. Rating again replaces the old rating.\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected isbn13 and rating arguments")
	}
	cmd.ISBN13 = fs.Arg(0)

	rating, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("rating must be a number between 1 and 5")
	}
	cmd.Rating = rating
	return nil
}

func (cmd *RateCommand) Run() error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	rating, err := pages.SubmitRating(context.Background(), env.client, env.sessions, cmd.ISBN13, cmd.Rating)
	if err != nil {
		return err
	}
	fmt.Printf("Rated %s: %d/5\n", cmd.ISBN13, rating)
	return nil
}
