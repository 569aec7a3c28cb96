package store

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/viant/afs"
)

// FileStore persists the token as a JSON snapshot at an afs URL, so the same
// code serves a local path, mem:// in tests, or any scheme afs supports.
type FileStore struct {
	mu  sync.Mutex
	fs  afs.Service
	url string
}

type fileSnapshot struct {
	Token string `json:"token"`
}

// NewFileStore creates a Store persisted at the given afs URL.
func NewFileStore(URL string) *FileStore {
	return &FileStore{fs: afs.New(), url: URL}
}

func (f *FileStore) Get(ctx context.Context) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.fs.DownloadWithURL(ctx, f.url)
	if err != nil {
		// missing or unreadable snapshot means logged out
		return "", false, nil
	}
	var snap fileSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return "", false, nil
	}
	if snap.Token == "" {
		return "", false, nil
	}
	return snap.Token, true, nil
}

func (f *FileStore) Set(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := json.Marshal(&fileSnapshot{Token: token})
	if err != nil {
		return err
	}
	return f.fs.Upload(ctx, f.url, 0o600, bytes.NewReader(data))
}

func (f *FileStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ok, err := f.fs.Exists(ctx, f.url)
	if err != nil || !ok {
		return nil
	}
	return f.fs.Delete(ctx, f.url)
}
