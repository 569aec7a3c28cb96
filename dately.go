package dately

import (
	"context"
	"time"

	"github.com/dately/dately-go/auth"
	"github.com/dately/dately-go/auth/store"
	"github.com/dately/dately-go/client"
)

// New assembles the SDK from options: token store variant, auth context and
// classifying client. The context is refreshed once so a persisted session
// is visible immediately.
func New(ctx context.Context, options *Options) (*client.Client, *auth.Context, error) {
	options.Init()
	if err := options.Validate(); err != nil {
		return nil, nil, err
	}
	tokenStore := newStore(&options.Store)
	authCtx := auth.New(tokenStore)
	if err := authCtx.Refresh(ctx); err != nil {
		return nil, nil, err
	}
	cli, err := client.New(options.BaseURL,
		client.WithStore(tokenStore),
		client.WithAuthContext(authCtx),
		client.WithTimeout(time.Duration(options.TimeoutSeconds)*time.Second),
		client.WithLogger(NewLogger(options.LogLevel)),
	)
	if err != nil {
		return nil, nil, err
	}
	return cli, authCtx, nil
}

func newStore(options *StoreOptions) store.Store {
	switch options.Kind {
	case "file":
		return store.NewFileStore(options.Location)
	case "secure":
		return store.NewSecureStore(options.Location, options.EncryptionKey)
	default:
		return store.NewMemoryStore()
	}
}
