package client_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dately/dately-go/client"
	"github.com/dately/dately-go/mock"
	"github.com/dately/dately-go/schema"
)

func TestDiscoverFiltersOwnedAndRequested(t *testing.T) {
	ctx := context.Background()
	var radiusByFilter = map[string]string{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("filter")
		radiusByFilter[filter] = r.URL.Query().Get("radius")
		var body string
		switch filter {
		case "all":
			body = `{"dates":[{"id":"1"},{"id":"2"},{"id":"3"}]}`
		case "owned":
			body = `{"dates":[{"id":"2"}]}`
		case "requested":
			body = `{"dates":[{"id":"3"}]}`
		default:
			body = `{}`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, body)
	}))
	defer server.Close()

	cli, _, _ := newTestClient(t, server.URL)
	events, err := cli.Discover(ctx, client.WithRadius(25))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(events))
	assert.Equal(t, "1", events[0].ID)
	// radius narrows the discover fetch only
	assert.Equal(t, "25", radiusByFilter["all"])
	assert.Equal(t, "", radiusByFilter["owned"])
	assert.Equal(t, "", radiusByFilter["requested"])
}

func TestListEventsToleratesMissingCollection(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	cli, _, _ := newTestClient(t, server.URL)
	events, err := cli.ListEvents(ctx, schema.FilterAll)
	assert.Nil(t, err)
	assert.NotNil(t, events)
	assert.Equal(t, 0, len(events))
}

func TestEventLifecycle(t *testing.T) {
	ctx := context.Background()
	service := mock.NewService(mock.WithUser("alice", "secret", "Alice"))
	server := httptest.NewServer(service.Handler())
	defer server.Close()

	cli, _, _ := newTestClient(t, server.URL)
	_, err := cli.Login(ctx, "alice", "secret")
	assert.Nil(t, err)

	created, err := cli.CreateEvent(ctx, &schema.Event{Title: "picnic", Description: "in the park"})
	assert.Nil(t, err)
	assert.NotEqual(t, "", created.ID)

	owned, err := cli.ListEvents(ctx, schema.FilterOwned)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(owned))
	assert.Equal(t, "picnic", owned[0].Title)

	fetched, err := cli.GetEvent(ctx, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "in the park", fetched.Description)

	// own events never show up in discover
	discovered, err := cli.Discover(ctx)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(discovered))
}

func TestGetEventNotFound(t *testing.T) {
	ctx := context.Background()
	service := mock.NewService(mock.WithUser("alice", "secret", "Alice"))
	server := httptest.NewServer(service.Handler())
	defer server.Close()

	cli, _, _ := newTestClient(t, server.URL)
	_, err := cli.Login(ctx, "alice", "secret")
	assert.Nil(t, err)

	_, err = cli.GetEvent(ctx, "missing")
	var requestErr *schema.RequestError
	assert.True(t, errors.As(err, &requestErr))
	assert.Equal(t, http.StatusNotFound, requestErr.StatusCode)
}
