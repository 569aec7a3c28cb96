package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthExpired matches any auth-expired failure (401/403). By the time a
	// caller sees it the stored token has already been cleared.
	ErrAuthExpired = errors.New("session expired")

	// ErrRequestFailed matches any other non-success response. Never retried.
	ErrRequestFailed = errors.New("request failed")
)

// AuthError reports a server-signalled session expiry for a named operation.
type AuthError struct {
	Op         string
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: session expired (status %d)", e.Op, e.StatusCode)
}

func (e *AuthError) Is(target error) bool {
	return target == ErrAuthExpired
}

// NewAuthError creates an auth-expired error for an operation.
func NewAuthError(op string, statusCode int) *AuthError {
	return &AuthError{Op: op, StatusCode: statusCode}
}

// RequestError reports a non-success status for a named operation.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: request failed with status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: request failed with status %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// NewRequestError creates a request failure for an operation.
func NewRequestError(op string, statusCode int, message string) *RequestError {
	return &RequestError{Op: op, StatusCode: statusCode, Message: message}
}
