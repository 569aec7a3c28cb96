package client

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dately/dately-go/auth"
	"github.com/dately/dately-go/auth/store"
)

// Option represents option
type Option func(c *Client)

// WithStore sets the token store
func WithStore(s store.Store) Option {
	return func(c *Client) {
		c.store = s
	}
}

// WithAuthContext attaches the auth context notified on login, logout and
// session expiry
func WithAuthContext(authCtx *auth.Context) Option {
	return func(c *Client) {
		c.authCtx = authCtx
	}
}

// WithHTTPClient overrides the underlying HTTP client; the caller is then
// responsible for wiring the authorizing transport
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the request timeout on the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
