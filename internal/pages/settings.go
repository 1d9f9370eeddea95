package pages

import (
	"context"

	"github.com/bookwise/bookwise-cli/internal/api"
	"github.com/bookwise/bookwise-cli/internal/entities"
	"github.com/bookwise/bookwise-cli/internal/session"
)

// UpdateProfile applies a profile update for the session user. On success
// the identity returned by the server replaces the stored session record
// wholesale, so username, email and id can never drift apart locally.
func UpdateProfile(ctx context.Context, client *api.Client, sessions session.Store, params api.UpdateUserParams) (*entities.User, error) {
	user, err := currentUser(sessions)
	if err != nil {
		return nil, err
	}
	updated, err := client.UpdateUser(ctx, user.UserID, params)
	if err != nil {
		return nil, err
	}
	if err := sessions.Save(*updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteAccount removes the session user's account after password
// confirmation and clears the local session.
func DeleteAccount(ctx context.Context, client *api.Client, sessions session.Store, password string) error {
	user, err := currentUser(sessions)
	if err != nil {
		return err
	}
	if err := client.DeleteUser(ctx, user.UserID, password); err != nil {
		return err
	}
	return sessions.Clear()
}
