package store

import (
	"context"
	"sync"
)

// Store is a pluggable persistence layer for the session token. At most one
// token is held: Set fully replaces the prior value, Clear removes it. An
// unreadable backend reports absence rather than failing, so the app degrades
// to logged-out instead of crashing.
type Store interface {
	// Get returns the current token; the bool reports presence.
	Get(ctx context.Context) (string, bool, error)
	// Set replaces the stored token.
	Set(ctx context.Context, token string) error
	// Clear removes the stored token.
	Clear(ctx context.Context) error
}

type memoryStore struct {
	mu      sync.RWMutex
	token   string
	present bool
}

func (m *memoryStore) Get(ctx context.Context) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.present, nil
}

func (m *memoryStore) Set(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.present = true
	return nil
}

func (m *memoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.present = false
	return nil
}

// NewMemoryStore creates a process-lifetime store; fine for tests and
// ephemeral sessions, swap for FileStore or SecureStore to survive restarts.
func NewMemoryStore() Store {
	return &memoryStore{}
}
