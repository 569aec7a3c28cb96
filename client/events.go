package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dately/dately-go/schema"
)

// ListOption adjusts an event listing.
type ListOption func(query url.Values)

// WithRadius limits a listing to events within the given distance (km).
func WithRadius(radius int) ListOption {
	return func(query url.Values) {
		if radius > 0 {
			query.Set("radius", strconv.Itoa(radius))
		}
	}
}

// ListEvents returns the events matching a filter; a missing collection in
// the payload yields an empty slice.
func (c *Client) ListEvents(ctx context.Context, filter schema.EventFilter, options ...ListOption) ([]schema.Event, error) {
	query := url.Values{}
	query.Set("filter", string(filter))
	for _, opt := range options {
		opt(query)
	}
	result, err := call[schema.EventsResult](ctx, c, "listEvents", http.MethodGet, "/dates", query, nil)
	if err != nil {
		return nil, err
	}
	if result.Events == nil {
		return []schema.Event{}, nil
	}
	return result.Events, nil
}

// Discover returns the "all" listing with events the user already owns or
// has requested filtered out client-side; the service has no combined view.
func (c *Client) Discover(ctx context.Context, options ...ListOption) ([]schema.Event, error) {
	all, err := c.ListEvents(ctx, schema.FilterAll, options...)
	if err != nil {
		return nil, err
	}
	owned, err := c.ListEvents(ctx, schema.FilterOwned)
	if err != nil {
		return nil, err
	}
	requested, err := c.ListEvents(ctx, schema.FilterRequested)
	if err != nil {
		return nil, err
	}
	exclude := make(map[string]bool, len(owned)+len(requested))
	for _, event := range owned {
		exclude[event.ID] = true
	}
	for _, event := range requested {
		exclude[event.ID] = true
	}
	ret := make([]schema.Event, 0, len(all))
	for _, event := range all {
		if !exclude[event.ID] {
			ret = append(ret, event)
		}
	}
	return ret, nil
}

// GetEvent fetches a single event by id.
func (c *Client) GetEvent(ctx context.Context, id string) (*schema.Event, error) {
	return call[schema.Event](ctx, c, "getEvent", http.MethodGet, "/dates/"+url.PathEscape(id), nil, nil)
}

// CreateEvent creates an event and returns the stored record including the
// assigned id.
func (c *Client) CreateEvent(ctx context.Context, event *schema.Event) (*schema.Event, error) {
	created, err := call[schema.Event](ctx, c, "createEvent", http.MethodPost, "/dates", nil, event)
	if err != nil {
		return nil, err
	}
	if created.ID == "" {
		return nil, fmt.Errorf("createEvent: service returned no event id")
	}
	return created, nil
}
