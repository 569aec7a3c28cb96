package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dately/dately-go/auth/store"
)

func TestRoundTripperAttachesRawToken(t *testing.T) {
	var gotAuthorization []string
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header["Authorization"]
		gotRequestID = r.Header.Get("X-Request-Id")
	}))
	defer server.Close()

	ctx := context.Background()
	tokenStore := store.NewMemoryStore()
	assert.Nil(t, tokenStore.Set(ctx, "tok123"))
	httpClient := &http.Client{Transport: New(WithStore(tokenStore))}

	resp, err := httpClient.Get(server.URL + "/dates")
	assert.Nil(t, err)
	_ = resp.Body.Close()
	// raw token, no Bearer prefix
	assert.Equal(t, []string{"tok123"}, gotAuthorization)
	assert.NotEqual(t, "", gotRequestID)
}

func TestRoundTripperAbsentToken(t *testing.T) {
	var gotAuthorization []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header["Authorization"]
	}))
	defer server.Close()

	httpClient := &http.Client{Transport: New(WithRequestID(false))}
	resp, err := httpClient.Get(server.URL)
	assert.Nil(t, err)
	_ = resp.Body.Close()
	// header is present but empty when logged out
	assert.Equal(t, []string{""}, gotAuthorization)
}

func TestRoundTripperLeavesCallerRequestIntact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	httpClient := &http.Client{Transport: New()}
	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	assert.Nil(t, err)
	resp, err := httpClient.Do(req)
	assert.Nil(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "", req.Header.Get("Authorization"))
}
