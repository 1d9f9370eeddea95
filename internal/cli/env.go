// Package cli implements the bookwise subcommands. Each command is a struct
// with ParseFlags and Run, dispatched from main.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bookwise/bookwise-cli/internal/api"
	"github.com/bookwise/bookwise-cli/internal/config"
	"github.com/bookwise/bookwise-cli/internal/entities"
	"github.com/bookwise/bookwise-cli/internal/session"
)

// env bundles what every command needs: configuration, the API client and
// the session store.
type env struct {
	cfg      *config.Config
	client   *api.Client
	sessions *session.SQLiteStore
}

func newEnv() (*env, error) {
	cfg := config.NewConfig()
	sessions, err := session.Open(cfg.Session.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	return &env{
		cfg:      cfg,
		client:   api.New(cfg.API.BaseURL, cfg.API.Timeout),
		sessions: sessions,
	}, nil
}

func (e *env) Close() {
	_ = e.sessions.Close()
}

// promptLine reads one line from stdin after printing the given prompt.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// requireValue returns value, prompting for it when the flag was left empty.
func requireValue(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	return promptLine(prompt)
}

func printBookLine(book entities.Book) {
	title := book.Title
	if title == "" {
		title = "(untitled)"
	}
	line := fmt.Sprintf("%-15s %s", book.ISBN13, title)
	if len(book.Authors) > 0 {
		line += " by " + book.Authors.String()
	}
	if book.AverageRating > 0 {
		line += fmt.Sprintf(" [%.2f★ / %d]", book.AverageRating, book.RatingsCount)
	}
	fmt.Println(line)
}

func printBookList(books []entities.Book) {
	for _, book := range books {
		printBookLine(book)
	}
}
