package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dately/dately-go/schema"
)

// Login exchanges credentials for a session token. The service returns the
// token in the Authorization response header, not the body; on success the
// token is persisted to the store and published to the auth context.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	const op = "login"
	payload, err := json.Marshal(&schema.LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	resp, err := c.do(ctx, op, http.MethodPost, "/login", nil, bytes.NewReader(payload), "application/json")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	token := resp.Header.Get("Authorization")
	if token == "" {
		return "", schema.NewRequestError(op, resp.StatusCode, "missing Authorization response header")
	}
	if err = c.store.Set(ctx, token); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if c.authCtx != nil {
		c.authCtx.SetValue(token)
	}
	return token, nil
}

// Register creates a new account; the caller logs in separately afterwards.
func (c *Client) Register(ctx context.Context, request *schema.RegistrationRequest) (*schema.UserProfile, error) {
	return call[schema.UserProfile](ctx, c, "register", http.MethodPost, "/users/registration", nil, request)
}

// Logout discards the session locally: the store is cleared and the auth
// context flipped. The service keeps no server-side session to tear down.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if c.authCtx != nil {
		c.authCtx.SetValue("")
	}
	return nil
}
