package transport

import (
	"net/http"

	"github.com/dately/dately-go/auth/store"
)

type Option func(*RoundTripper)

// WithStore sets the token store
func WithStore(store store.Store) Option {
	return func(t *RoundTripper) {
		t.store = store
	}
}

// WithTransport sets the underlying transport
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}

// WithRequestID toggles per-request X-Request-Id generation
func WithRequestID(enabled bool) Option {
	return func(t *RoundTripper) {
		t.requestIDs = enabled
	}
}
