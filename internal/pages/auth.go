package pages

import (
	"context"

	"github.com/bookwise/bookwise-cli/internal/api"
	"github.com/bookwise/bookwise-cli/internal/entities"
	"github.com/bookwise/bookwise-cli/internal/session"
)

// Login authenticates and stores the returned identity as the session.
func Login(ctx context.Context, client *api.Client, sessions session.Store, username, password string) (*entities.User, error) {
	user, err := client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := sessions.Save(*user); err != nil {
		return nil, err
	}
	return user, nil
}

// Register creates the account and then performs the follow-up login, so a
// successful registration leaves the user signed in.
func Register(ctx context.Context, client *api.Client, sessions session.Store, username, email, password string) (*entities.User, error) {
	if err := client.Register(ctx, username, email, password); err != nil {
		return nil, err
	}
	return Login(ctx, client, sessions, username, password)
}

// Logout ends the remote session and clears the local identity. The local
// identity is cleared even when the remote call fails; a stale server
// session is harmless, a stale local one is not.
func Logout(ctx context.Context, client *api.Client, sessions session.Store) error {
	apiErr := client.Logout(ctx)
	if err := sessions.Clear(); err != nil {
		return err
	}
	return apiErr
}
