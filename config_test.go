package dately

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"

	"github.com/dately/dately-go/mock"
)

func TestOptionsDefaults(t *testing.T) {
	options := &Options{BaseURL: "http://localhost:8080"}
	options.Init()
	assert.Equal(t, 30, options.TimeoutSeconds)
	assert.Equal(t, "info", options.LogLevel)
	assert.Equal(t, "memory", options.Store.Kind)
	assert.Nil(t, options.Validate())

	withLocation := &Options{BaseURL: "http://localhost:8080", Store: StoreOptions{Location: "/tmp/token.json"}}
	withLocation.Init()
	assert.Equal(t, "file", withLocation.Store.Kind)
}

func TestOptionsValidate(t *testing.T) {
	testCases := []struct {
		description string
		options     Options
		valid       bool
	}{
		{description: "missing base URL", options: Options{}, valid: false},
		{description: "file store without location", options: Options{BaseURL: "http://h", Store: StoreOptions{Kind: "file"}}, valid: false},
		{description: "unknown store kind", options: Options{BaseURL: "http://h", Store: StoreOptions{Kind: "redis"}}, valid: false},
		{description: "memory store", options: Options{BaseURL: "http://h", Store: StoreOptions{Kind: "memory"}}, valid: true},
	}
	for _, testCase := range testCases {
		err := testCase.options.Validate()
		if testCase.valid {
			assert.Nil(t, err, testCase.description)
		} else {
			assert.NotNil(t, err, testCase.description)
		}
	}
}

func TestLoadOptions(t *testing.T) {
	ctx := context.Background()
	URL := filepath.Join(t.TempDir(), "config.yaml")
	config := []byte(`baseURL: http://localhost:8080
timeoutSeconds: 5
store:
  kind: file
  location: /tmp/dately/token.json
`)
	fs := afs.New()
	assert.Nil(t, fs.Upload(ctx, URL, 0o600, bytes.NewReader(config)))

	options, err := LoadOptions(ctx, URL)
	assert.Nil(t, err)
	assert.Equal(t, "http://localhost:8080", options.BaseURL)
	assert.Equal(t, 5, options.TimeoutSeconds)
	assert.Equal(t, "file", options.Store.Kind)
	assert.Equal(t, "/tmp/dately/token.json", options.Store.Location)
}

func TestNewEndToEnd(t *testing.T) {
	ctx := context.Background()
	service := mock.NewService(mock.WithUser("alice", "secret", "Alice"))
	server := httptest.NewServer(service.Handler())
	defer server.Close()

	cli, authCtx, err := New(ctx, &Options{BaseURL: server.URL, LogLevel: "error"})
	assert.Nil(t, err)
	assert.NotNil(t, authCtx)

	_, err = cli.Login(ctx, "alice", "secret")
	assert.Nil(t, err)
	token, present, err := cli.Store().Get(ctx)
	assert.Nil(t, err)
	assert.True(t, present)
	assert.Equal(t, token, authCtx.Token())
}
