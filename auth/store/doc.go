// Package store defines the token store used by the auth context and the
// authorizing transport.
//
// It ships with an in-memory implementation for tests and ephemeral sessions,
// an afs-backed file store, and a scy-encrypted store for hosts without
// platform secure storage. The variant is selected once at startup; call
// sites never branch on the backend.
package store
