package client

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/dately/dately-go/schema"
)

// ListAttendees returns the approved attendees of an event.
func (c *Client) ListAttendees(ctx context.Context, eventID string) ([]schema.Attendee, error) {
	result, err := call[schema.AttendeesResult](ctx, c, "listAttendees", http.MethodGet, attendeesPath(eventID), nil, nil)
	if err != nil {
		return nil, err
	}
	if result.Attendees == nil {
		return []schema.Attendee{}, nil
	}
	return result.Attendees, nil
}

// ListAttendeeRequests returns the pending join requests for an event; only
// meaningful for the owner.
func (c *Client) ListAttendeeRequests(ctx context.Context, eventID string) ([]schema.AttendeeRequest, error) {
	result, err := call[schema.AttendeeRequestsResult](ctx, c, "listAttendeeRequests", http.MethodGet, attendeesPath(eventID)+"/requests", nil, nil)
	if err != nil {
		return nil, err
	}
	if result.Requests == nil {
		return []schema.AttendeeRequest{}, nil
	}
	return result.Requests, nil
}

// RequestAttendance asks to join an event as the current user.
func (c *Client) RequestAttendance(ctx context.Context, eventID string) error {
	return c.attendeeCall(ctx, "requestAttendance", http.MethodPut, attendeesPath(eventID))
}

// CancelAttendance withdraws the current user from an event.
func (c *Client) CancelAttendance(ctx context.Context, eventID string) error {
	return c.attendeeCall(ctx, "cancelAttendance", http.MethodDelete, attendeesPath(eventID))
}

// ApproveAttendee accepts a join request; owner only.
func (c *Client) ApproveAttendee(ctx context.Context, eventID, userID string) error {
	return c.attendeeCall(ctx, "approveAttendee", http.MethodPut, attendeesPath(eventID)+"/"+url.PathEscape(userID))
}

// RejectAttendee declines a join request or removes an attendee; owner only.
func (c *Client) RejectAttendee(ctx context.Context, eventID, userID string) error {
	return c.attendeeCall(ctx, "rejectAttendee", http.MethodDelete, attendeesPath(eventID)+"/"+url.PathEscape(userID))
}

func attendeesPath(eventID string) string {
	return "/dates/" + url.PathEscape(eventID) + "/attendees"
}

func (c *Client) attendeeCall(ctx context.Context, op, method, path string) error {
	resp, err := c.do(ctx, op, method, path, nil, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
