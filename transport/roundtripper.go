package transport

import (
	"net/http"

	"github.com/dately/dately-go/auth/store"
	"github.com/google/uuid"
)

// RoundTripper attaches the session credential to every outgoing request.
// The service expects the raw token as the whole Authorization header value,
// not a Bearer scheme; the header is sent even when no token is held (empty
// value) to match the wire contract. Single attempt, no replay.
type RoundTripper struct {
	store      store.Store
	transport  http.RoundTripper
	requestIDs bool
}

// New creates an authorizing round tripper backed by the given options.
func New(options ...Option) *RoundTripper {
	ret := &RoundTripper{
		transport:  http.DefaultTransport,
		store:      store.NewMemoryStore(),
		requestIDs: true,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Store returns the backing token store.
func (r *RoundTripper) Store() store.Store {
	return r.store
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	token, _, err := r.store.Get(req.Context())
	if err != nil {
		token = ""
	}
	next := clone(req)
	next.Header.Set("Authorization", token)
	if r.requestIDs && next.Header.Get("X-Request-Id") == "" {
		next.Header.Set("X-Request-Id", uuid.New().String())
	}
	return r.transport.RoundTrip(next)
}
