package schema

import "time"

// EventFilter selects which slice of events a listing returns.
type EventFilter string

const (
	// FilterAll returns every visible event.
	FilterAll EventFilter = "all"
	// FilterOwned returns events created by the current user.
	FilterOwned EventFilter = "owned"
	// FilterRequested returns events the current user asked to join.
	FilterRequested EventFilter = "requested"
)

// AttendeeStatus describes where an attendance request stands.
type AttendeeStatus string

const (
	AttendeeRequested AttendeeStatus = "requested"
	AttendeeApproved  AttendeeStatus = "approved"
)

// Event is a planned date as returned by the service. The client never
// mutates events locally; it only renders what the service sends.
type Event struct {
	ID          string       `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string       `json:"title,omitempty" yaml:"title,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Location    *Location    `json:"location,omitempty" yaml:"location,omitempty"`
	StartsAt    *time.Time   `json:"startsAt,omitempty" yaml:"startsAt,omitempty"`
	OwnerID     string       `json:"ownerId,omitempty" yaml:"ownerId,omitempty"`
	Attendees   []Attendee   `json:"attendees,omitempty" yaml:"attendees,omitempty"`
	Images      []ImageAsset `json:"images,omitempty" yaml:"images,omitempty"`
}

// Location is a point with an optional human readable label.
type Location struct {
	Label     string  `json:"label,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// UserProfile is the service-side record for a user.
type UserProfile struct {
	ID       string       `json:"id,omitempty" yaml:"id,omitempty"`
	Username string       `json:"username,omitempty" yaml:"username,omitempty"`
	Name     string       `json:"name,omitempty" yaml:"name,omitempty"`
	Bio      string       `json:"bio,omitempty" yaml:"bio,omitempty"`
	Birthday *time.Time   `json:"birthday,omitempty" yaml:"birthday,omitempty"`
	Images   []ImageAsset `json:"images,omitempty" yaml:"images,omitempty"`
}

// Attendee is a user attached to an event together with the request status.
type Attendee struct {
	UserID   string         `json:"userId,omitempty"`
	Username string         `json:"username,omitempty"`
	Status   AttendeeStatus `json:"status,omitempty"`
}

// AttendeeRequest is a pending ask-to-join for an event.
type AttendeeRequest struct {
	EventID string         `json:"eventId,omitempty"`
	UserID  string         `json:"userId,omitempty"`
	Status  AttendeeStatus `json:"status,omitempty"`
}

// ImageAsset references an uploaded image by id; the binary lives with the
// service and is fetched by URL.
type ImageAsset struct {
	ID          string `json:"id,omitempty"`
	URL         string `json:"url,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// LoginRequest is the credential payload for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegistrationRequest creates a new account.
type RegistrationRequest struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Name     string     `json:"name,omitempty"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

// EventsResult wraps an event listing; the events field may be absent in the
// wire payload, callers always see a slice.
type EventsResult struct {
	Events []Event `json:"dates,omitempty"`
}

// UsersResult wraps a user listing.
type UsersResult struct {
	Users []UserProfile `json:"users,omitempty"`
}

// ImagesResult wraps an image listing.
type ImagesResult struct {
	Images []ImageAsset `json:"images,omitempty"`
}

// AttendeesResult wraps an attendee listing.
type AttendeesResult struct {
	Attendees []Attendee `json:"attendees,omitempty"`
}

// AttendeeRequestsResult wraps pending attendance requests for an event.
type AttendeeRequestsResult struct {
	Requests []AttendeeRequest `json:"requests,omitempty"`
}
