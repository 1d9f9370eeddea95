package entities

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// UserID is the opaque identifier the server assigns to an account. The API
// emits it as a JSON number in some payloads and as a string in others, so
// it is normalized to a string on decode.
type UserID string

func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = UserID(n.String())
	return nil
}

func (id UserID) MarshalJSON() ([]byte, error) {
	// Preserve the numeric form for IDs that are plain integers.
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return json.Marshal(n)
	}
	return json.Marshal(string(id))
}

func (id UserID) String() string {
	return string(id)
}

// User is the session identity: the record stored locally after a
// successful login and used to scope every user-specific request.
type User struct {
	UserID   UserID `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
