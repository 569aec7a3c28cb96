// Package client implements the typed operations of the dately service on
// top of a single classifying HTTP core.
//
// Responses are classified exactly once: 2xx succeeds, 401/403 clears the
// stored token and surfaces schema.ErrAuthExpired so callers reset to a
// logged-out view, anything else surfaces schema.ErrRequestFailed with the
// operation name. No call is ever retried. Every operation takes a
// context.Context; cancelling it aborts the in-flight request.
package client
