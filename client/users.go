package client

import (
	"context"
	"net/http"

	"github.com/dately/dately-go/schema"
)

// ListUsers returns the visible user profiles.
func (c *Client) ListUsers(ctx context.Context) ([]schema.UserProfile, error) {
	result, err := call[schema.UsersResult](ctx, c, "listUsers", http.MethodGet, "/users", nil, nil)
	if err != nil {
		return nil, err
	}
	if result.Users == nil {
		return []schema.UserProfile{}, nil
	}
	return result.Users, nil
}

// UpdateProfile replaces the current user's profile.
func (c *Client) UpdateProfile(ctx context.Context, profile *schema.UserProfile) (*schema.UserProfile, error) {
	return call[schema.UserProfile](ctx, c, "updateProfile", http.MethodPut, "/users/profile", nil, profile)
}
