package config

const (
	// DefaultAPIBaseURL is where the Bookwise API listens in local setups.
	DefaultAPIBaseURL = "http://localhost:5000"

	// DefaultSessionDBPath is the default path for the local session database.
	DefaultSessionDBPath = "./bookwise.db"
)
