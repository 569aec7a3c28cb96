package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dately/dately-go/auth"
	"github.com/dately/dately-go/auth/store"
	"github.com/dately/dately-go/schema"
	"github.com/dately/dately-go/transport"
)

const defaultTimeout = 30 * time.Second

// Client talks to the dately service. Every authenticated call funnels
// through it: the transport attaches the current token, the client
// classifies the response and owns the clear-on-expiry side effect.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      store.Store
	authCtx    *auth.Context
	logger     *slog.Logger
}

// New creates a Client for the given base URL. Unless overridden by options
// it uses an in-memory token store and a default timeout.
func New(baseURL string, options ...Option) (*Client, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base URL was empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	ret := &Client{
		baseURL: baseURL,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.store == nil {
		ret.store = store.NewMemoryStore()
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if ret.httpClient.Transport == nil {
		ret.httpClient.Transport = transport.New(transport.WithStore(ret.store))
	}
	return ret, nil
}

// Store returns the backing token store.
func (c *Client) Store() store.Store {
	return c.store
}

// AuthContext returns the attached auth context, nil when none is attached.
func (c *Client) AuthContext() *auth.Context {
	return c.authCtx
}

// do issues a single request and classifies the response. On 401/403 the
// stored token is cleared and the auth context flipped before the error is
// returned, so by the time a caller sees ErrAuthExpired the session is gone.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.logger.Debug("request", "op", op, "method", method, "path", path, "status", resp.StatusCode)
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return resp, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		_ = resp.Body.Close()
		c.expire(ctx)
		return nil, schema.NewAuthError(op, resp.StatusCode)
	default:
		message := readMessage(resp.Body)
		_ = resp.Body.Close()
		return nil, schema.NewRequestError(op, resp.StatusCode, message)
	}
}

func (c *Client) expire(ctx context.Context) {
	// clear even when the caller's context is already cancelled
	_ = c.store.Clear(context.WithoutCancel(ctx))
	if c.authCtx != nil {
		c.authCtx.Expire()
	}
}

// call issues a JSON request and decodes the response into T. An empty body
// decodes to the zero value; missing collection fields stay nil and are
// normalized by the operation.
func call[T any](ctx context.Context, c *Client, op, method, path string, query url.Values, payload any) (*T, error) {
	var body io.Reader
	var contentType string
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	resp, err := c.do(ctx, op, method, path, query, body, contentType)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result T
	if len(data) > 0 {
		if err = json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return &result, nil
}

func readMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 1024))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
