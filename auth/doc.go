// Package auth holds the in-memory auth state derived from the token store:
// a single token slot with a subscription mechanism so views re-render when
// the session changes. Persistence stays with the store; the context is a
// cache that is recomputed on start and on explicit Refresh calls.
package auth
