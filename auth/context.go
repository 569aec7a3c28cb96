package auth

import (
	"context"
	"sync"

	"github.com/dately/dately-go/auth/store"
)

// State reports whether a session token is currently held.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Listener observes token changes; an empty token means logged out.
type Listener func(token string)

// Context is the process-wide mirror of the token store's current value. All
// mutation funnels through Refresh and SetValue; there is no ambient global.
type Context struct {
	mu        sync.Mutex
	store     store.Store
	token     string
	present   bool
	listeners map[int]Listener
	nextID    int
}

// New creates a Context backed by the given store. Call Refresh to pick up a
// persisted token.
func New(s store.Store) *Context {
	return &Context{store: s, listeners: map[int]Listener{}}
}

// Refresh re-reads the store and republishes the value. Call it on process
// start and whenever a view regains focus, so changes made by login or logout
// elsewhere become visible.
func (c *Context) Refresh(ctx context.Context) error {
	token, present, err := c.store.Get(ctx)
	if err != nil {
		return err
	}
	if !present {
		token = ""
	}
	c.publish(token, present)
	return nil
}

// SetValue overrides the cached token directly, skipping the storage
// round-trip; used right after login and on logout. An empty token clears.
func (c *Context) SetValue(token string) {
	c.publish(token, token != "")
}

// Expire transitions to Unauthenticated after a server-signalled expiry. The
// store has already been cleared by the client at this point.
func (c *Context) Expire() {
	c.publish("", false)
}

// Token returns the last-known token; empty when logged out.
func (c *Context) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// State reports Authenticated when a token is held.
func (c *Context) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.present {
		return Authenticated
	}
	return Unauthenticated
}

// Subscribe registers a listener for token changes and returns an
// unsubscribe func. Listeners fire only when the value actually changes.
func (c *Context) Subscribe(fn Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *Context) publish(token string, present bool) {
	c.mu.Lock()
	if c.token == token && c.present == present {
		c.mu.Unlock()
		return
	}
	c.token = token
	c.present = present
	notify := make([]Listener, 0, len(c.listeners))
	for _, fn := range c.listeners {
		notify = append(notify, fn)
	}
	c.mu.Unlock()
	// listeners run outside the lock so they may call back into the context
	for _, fn := range notify {
		fn(token)
	}
}
