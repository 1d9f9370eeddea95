package api

import (
	"errors"
	"net/http"
)

// Kind classifies a failed API call so callers can branch on the class of
// failure instead of matching message text.
type Kind int

const (
	// KindValidation covers input the server rejected: bad credentials,
	// duplicate accounts, missing fields. The message is the server's own
	// wording and is safe to show to the user.
	KindValidation Kind = iota + 1

	// KindNotFound is a 404 for a record that genuinely does not exist.
	// Liked-books and review lookups never surface this kind; they
	// normalize it to an empty collection instead.
	KindNotFound

	// KindServer is any other non-success HTTP status.
	KindServer

	// KindTransport is a network-level failure or an undecodable response:
	// no usable answer from the server at all.
	KindTransport
)

// genericMessage is used when there is no server response to take a
// message from.
const genericMessage = "An error occurred."

// Error is the normalized failure of an API operation.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, 0 for transport failures
	Message string // Server-provided when available, fallback otherwise
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf extracts the failure kind from err, or 0 if err is not an API error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// IsNotFound reports whether err is a normalized 404.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindServer
	}
}

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func transportError() *Error {
	return &Error{Kind: KindTransport, Message: genericMessage}
}
