// Package api wraps the Bookwise REST API. It is the single choke point for
// network access: every operation returns parsed response data on success or
// a kinded *Error on failure. The package never touches the session store
// and never triggers navigation; both are the caller's responsibility.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client calls the Bookwise API at a fixed base URL.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a client for the API at baseURL. A zero timeout disables the
// client-side deadline; callers then bound requests via context.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// do performs one request and normalizes the outcome. A non-success status
// becomes an *Error whose message is the response body's "error" field when
// present, else fallback. Failures with no response at all become transport
// errors with a generic message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, fallback string) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp, fallback)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return transportError()
	}
	return nil
}

// errorBody is the error shape the API uses across all endpoints.
type errorBody struct {
	Error string `json:"error"`
}

func decodeError(resp *http.Response, fallback string) *Error {
	message := fallback
	if message == "" {
		message = genericMessage
	}

	// Bound the read; error bodies are small.
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		var body errorBody
		if json.Unmarshal(data, &body) == nil && body.Error != "" {
			message = body.Error
		}
	}

	return &Error{
		Kind:    kindForStatus(resp.StatusCode),
		Status:  resp.StatusCode,
		Message: message,
	}
}

// messageResponse is the success shape of mutation endpoints that only
// acknowledge the action.
type messageResponse struct {
	Message string `json:"message"`
}
