package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bookwise/bookwise-cli/internal/entities"
)

// Fallback messages for account operations, used when the server's error
// body carries no message of its own.
const (
	fallbackRegister   = "Error registering user."
	fallbackLogin      = "Error logging in."
	fallbackLogout     = "Error logging out."
	fallbackUpdateUser = "Error updating user."
	fallbackDeleteUser = "Error deleting user."
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. The caller still has to log in afterwards;
// registration does not establish a session.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return validationError("Username, email and password are required")
	}
	body := registerRequest{Username: username, Email: email, Password: password}
	return c.do(ctx, http.MethodPost, "/register", nil, body, &messageResponse{}, fallbackRegister)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string        `json:"message"`
	User    entities.User `json:"user"`
}

// Login authenticates and returns the server's identity record. Persisting
// it is up to the caller.
func (c *Client) Login(ctx context.Context, username, password string) (*entities.User, error) {
	if username == "" || password == "" {
		return nil, validationError("Username and password are required")
	}
	var resp loginResponse
	body := loginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/login", nil, body, &resp, fallbackLogin); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout ends the server-side session. Clearing the local identity is the
// caller's responsibility.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil, &messageResponse{}, fallbackLogout)
}

// UpdateUserParams carries a profile update. CurrentPassword confirms
// username/email changes; OldPassword and NewPassword are both required to
// change the password and may be left empty otherwise.
type UpdateUserParams struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	OldPassword     string `json:"old_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
}

type updateUserResponse struct {
	Message string        `json:"message"`
	User    entities.User `json:"user"`
}

// UpdateUser updates the profile and returns the full updated identity
// record, which the caller should store as a whole replacement.
func (c *Client) UpdateUser(ctx context.Context, userID entities.UserID, params UpdateUserParams) (*entities.User, error) {
	if userID == "" {
		return nil, validationError("User id is required")
	}
	var resp updateUserResponse
	path := fmt.Sprintf("/update-user/%s", userID)
	if err := c.do(ctx, http.MethodPut, path, nil, params, &resp, fallbackUpdateUser); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

type deleteUserRequest struct {
	Password string `json:"password"`
}

// DeleteUser removes the account after confirming the password. The server
// also deletes the user's likes and reviews.
func (c *Client) DeleteUser(ctx context.Context, userID entities.UserID, password string) error {
	if userID == "" {
		return validationError("User id is required")
	}
	if password == "" {
		return validationError("Current password is required")
	}
	path := fmt.Sprintf("/delete-user/%s", userID)
	return c.do(ctx, http.MethodDelete, path, nil, deleteUserRequest{Password: password}, &messageResponse{}, fallbackDeleteUser)
}
