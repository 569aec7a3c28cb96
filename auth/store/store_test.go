package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "token.json")),
		"mem":    NewFileStore(fmt.Sprintf("mem://localhost/%v/token.json", t.Name())),
	}
	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			_, present, err := s.Get(ctx)
			assert.Nil(t, err)
			assert.False(t, present)

			assert.Nil(t, s.Set(ctx, "first"))
			assert.Nil(t, s.Set(ctx, "second"))
			token, present, err := s.Get(ctx)
			assert.Nil(t, err)
			assert.True(t, present)
			assert.Equal(t, "second", token)

			assert.Nil(t, s.Clear(ctx))
			_, present, err = s.Get(ctx)
			assert.Nil(t, err)
			assert.False(t, present)
			// clearing twice is a no-op
			assert.Nil(t, s.Clear(ctx))
		})
	}
}

func TestFileStorePersistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token.json")
	assert.Nil(t, NewFileStore(path).Set(ctx, "persisted"))

	reopened := NewFileStore(path)
	token, present, err := reopened.Get(ctx)
	assert.Nil(t, err)
	assert.True(t, present)
	assert.Equal(t, "persisted", token)
}

func TestFileStoreUnreadableBackend(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "missing", "token.json"))
	token, present, err := s.Get(ctx)
	// absence, not a fatal error: the app degrades to logged out
	assert.Nil(t, err)
	assert.False(t, present)
	assert.Equal(t, "", token)
}

func TestSecureStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewSecureStore(filepath.Join(t.TempDir(), "token.scy"), "")

	_, present, err := s.Get(ctx)
	assert.Nil(t, err)
	assert.False(t, present)

	assert.Nil(t, s.Set(ctx, "secret-token"))
	token, present, err := s.Get(ctx)
	assert.Nil(t, err)
	assert.True(t, present)
	assert.Equal(t, "secret-token", token)

	assert.Nil(t, s.Clear(ctx))
	_, present, err = s.Get(ctx)
	assert.Nil(t, err)
	assert.False(t, present)
}
