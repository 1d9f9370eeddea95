package main

import (
	"fmt"
	"os"

	"github.com/bookwise/bookwise-cli/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// command is the shape every subcommand implements.
type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "login":
		cmd = cli.NewLoginCommand()
	case "register":
		cmd = cli.NewRegisterCommand()
	case "logout":
		cmd = cli.NewLogoutCommand()
	case "whoami":
		cmd = cli.NewWhoamiCommand()
	case "books":
		cmd = cli.NewBooksCommand()
	case "book":
		cmd = cli.NewBookCommand()
	case "categories":
		cmd = cli.NewCategoriesCommand()
	case "author":
		cmd = cli.NewAuthorCommand()
	case "favorites":
		cmd = cli.NewFavoritesCommand()
	case "like":
		cmd = cli.NewLikeCommand()
	case "unlike":
		cmd = cli.NewUnlikeCommand()
	case "reviews":
		cmd = cli.NewReviewsCommand()
	case "rate":
		cmd = cli.NewRateCommand()
	case "suggest":
		cmd = cli.NewSuggestCommand()
	case "account-update":
		cmd = cli.NewAccountUpdateCommand()
	case "account-delete":
		cmd = cli.NewAccountDeleteCommand()
	case "version":
		fmt.Printf("bookwise %s (%s)\n", Version, Commit)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Bookwise catalog client.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Account:")
	fmt.Fprintln(os.Stderr, "  register        Create an account and sign in")
	fmt.Fprintln(os.Stderr, "  login           Sign in")
	fmt.Fprintln(os.Stderr, "  logout          Sign out")
	fmt.Fprintln(os.Stderr, "  whoami          Show the signed-in user")
	fmt.Fprintln(os.Stderr, "  account-update  Change username, email or password")
	fmt.Fprintln(os.Stderr, "  account-delete  Delete the account")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Catalog:")
	fmt.Fprintln(os.Stderr, "  books           Browse the catalog (paged, filterable)")
	fmt.Fprintln(os.Stderr, "  book            Show one book")
	fmt.Fprintln(os.Stderr, "  categories      List categories")
	fmt.Fprintln(os.Stderr, "  author          List books by an author")
	fmt.Fprintln(os.Stderr, "  suggest         AI-powered suggestions")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Your books:")
	fmt.Fprintln(os.Stderr, "  favorites       List liked books")
	fmt.Fprintln(os.Stderr, "  like, unlike    Manage liked books")
	fmt.Fprintln(os.Stderr, "  reviews         List your ratings")
	fmt.Fprintln(os.Stderr, "  rate            Rate a book 1-5")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintf(os.Stderr, "Run '%s <command> -h' for command options.\n", os.Args[0])
}
