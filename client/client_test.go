package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dately/dately-go/auth"
	"github.com/dately/dately-go/auth/store"
	"github.com/dately/dately-go/client"
	"github.com/dately/dately-go/schema"
)

func newTestClient(t *testing.T, baseURL string) (*client.Client, store.Store, *auth.Context) {
	tokenStore := store.NewMemoryStore()
	authCtx := auth.New(tokenStore)
	ret, err := client.New(baseURL,
		client.WithStore(tokenStore),
		client.WithAuthContext(authCtx),
	)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return ret, tokenStore, authCtx
}

func TestClientComposesRequest(t *testing.T) {
	ctx := context.Background()
	var gotPath, gotQuery, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotToken = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"dates":[]}`))
	}))
	defer server.Close()

	cli, tokenStore, _ := newTestClient(t, server.URL)
	assert.Nil(t, tokenStore.Set(ctx, "tok123"))

	_, err := cli.ListEvents(ctx, schema.FilterAll)
	assert.Nil(t, err)
	assert.Equal(t, "/dates", gotPath)
	assert.Equal(t, "filter=all", gotQuery)
	assert.Equal(t, "tok123", gotToken)
}

func TestClientAuthExpiry(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		ctx := context.Background()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "expired", status)
		}))

		cli, tokenStore, authCtx := newTestClient(t, server.URL)
		assert.Nil(t, tokenStore.Set(ctx, "stale"))
		authCtx.SetValue("stale")

		_, err := cli.ListEvents(ctx, schema.FilterAll)
		assert.True(t, errors.Is(err, schema.ErrAuthExpired), "status %v", status)
		// the token is gone by the time the call resolves
		_, present, storeErr := tokenStore.Get(ctx)
		assert.Nil(t, storeErr)
		assert.False(t, present)
		assert.Equal(t, auth.Unauthenticated, authCtx.State())
		server.Close()
	}
}

func TestClientRequestFailed(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	cli, tokenStore, _ := newTestClient(t, server.URL)
	assert.Nil(t, tokenStore.Set(ctx, "tok123"))

	_, err := cli.ListEvents(ctx, schema.FilterAll)
	assert.True(t, errors.Is(err, schema.ErrRequestFailed))

	var requestErr *schema.RequestError
	assert.True(t, errors.As(err, &requestErr))
	assert.Equal(t, "listEvents", requestErr.Op)
	assert.Equal(t, http.StatusInternalServerError, requestErr.StatusCode)

	// a generic failure does not clear the session
	token, present, storeErr := tokenStore.Get(ctx)
	assert.Nil(t, storeErr)
	assert.True(t, present)
	assert.Equal(t, "tok123", token)
}

func TestClientCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	cli, _, _ := newTestClient(t, server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()
	_, err := cli.ListEvents(ctx, schema.FilterAll)
	assert.NotNil(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClientInvalidBaseURL(t *testing.T) {
	_, err := client.New("")
	assert.NotNil(t, err)
}
