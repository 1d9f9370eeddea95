// Package pages implements the data-loading contract of each view: declared
// inputs in, a result struct or an error out, with no coupling to any UI
// framework. Loaders sequence fetches that depend on earlier results and run
// independent fetches concurrently. All session writes happen here, never in
// the API client.
package pages

import (
	"errors"

	"github.com/bookwise/bookwise-cli/internal/entities"
	"github.com/bookwise/bookwise-cli/internal/session"
)

// ErrNoSession is returned by loaders that require a signed-in user.
var ErrNoSession = errors.New("not signed in")

// currentUser loads the session identity, requiring one to be present.
func currentUser(sessions session.Store) (*entities.User, error) {
	user, err := sessions.Load()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoSession
	}
	return user, nil
}
