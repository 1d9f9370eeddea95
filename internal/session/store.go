// Package session holds the current signed-in identity for the lifetime of
// the local installation. There is at most one identity at a time; there is
// no multi-account concept.
package session

import "github.com/bookwise/bookwise-cli/internal/entities"

// sessionKey is the constant name the identity record is stored under,
// mirroring the single well-known slot the web client used.
const sessionKey = "user"

// Store persists the session identity.
//
// Load returns (nil, nil) when no identity is stored or the stored record is
// malformed: bad data degrades to "no session", it never errors. Save fully
// replaces the stored record; writers must never patch individual fields.
type Store interface {
	Load() (*entities.User, error)
	Save(user entities.User) error
	Clear() error
}
