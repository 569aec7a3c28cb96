package transport

import "net/http"

func clone(r *http.Request) *http.Request {
	// shallow body share is fine: the request is sent exactly once
	return r.Clone(r.Context())
}
