// Package dately assembles the dately client SDK: a token store selected by
// platform capability, an auth context mirroring it, and the typed REST
// client every screen-level feature calls into.
package dately
