package store

import (
	"context"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/scy"
)

// DefaultEncryptionKey encrypts tokens at rest when no key is configured.
const DefaultEncryptionKey = "blowfish://default"

// SecureStore keeps the token encrypted at rest via scy; it is the analogue
// of platform secure storage for hosts that have no keychain.
type SecureStore struct {
	mu       sync.Mutex
	service  *scy.Service
	fs       afs.Service
	resource *scy.Resource
}

// NewSecureStore creates a Store encrypting the token at URL with the given
// key; an empty key selects DefaultEncryptionKey.
func NewSecureStore(URL, key string) *SecureStore {
	if key == "" {
		key = DefaultEncryptionKey
	}
	return &SecureStore{
		service:  scy.New(),
		fs:       afs.New(),
		resource: scy.NewResource("", URL, key),
	}
}

func (s *SecureStore) Get(ctx context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ok, err := s.fs.Exists(ctx, s.resource.URL); err != nil || !ok {
		return "", false, nil
	}
	secret, err := s.service.Load(ctx, s.resource)
	if err != nil {
		// undecryptable or unreadable secret degrades to logged out
		return "", false, nil
	}
	token := secret.String()
	if token == "" {
		return "", false, nil
	}
	return token, true, nil
}

func (s *SecureStore) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.service.Store(ctx, scy.NewSecret(token, s.resource))
}

func (s *SecureStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.fs.Exists(ctx, s.resource.URL)
	if err != nil || !ok {
		return nil
	}
	return s.fs.Delete(ctx, s.resource.URL)
}
