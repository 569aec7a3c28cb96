// Package transport provides the http.RoundTripper that reads the current
// token from the store and attaches it to each request. Response
// classification (success, auth-expired, failure) lives in the client, which
// owns the clear-on-expiry side effect.
package transport
