// Package catalog is the client of the remote pet-shop API. Every call maps a
// non-2xx response to an *APIError carrying the status and the server message,
// so callers surface plain text instead of raw transport errors.
package catalog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// TokenSource yields the bearer token attached to outgoing requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

type Client struct {
	http   *resty.Client
	tokens TokenSource
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15 * time.Second).
			SetHeader("Accept", "application/json"),
		tokens: tokens,
	}
	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if tok := c.tokens.Token(); tok != "" {
			req.SetHeader("Authorization", "Bearer "+tok)
		}
		return nil
	})
	return c
}

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// errBody is the failure envelope the server uses across endpoints.
type errBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// apiErr turns a non-2xx response into an *APIError, preferring the server's
// message field and falling back to the HTTP status text.
func apiErr(resp *resty.Response) error {
	var body errBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		return &APIError{Status: resp.StatusCode(), Message: body.Message}
	}
	return &APIError{Status: resp.StatusCode(), Message: resp.Status()}
}
