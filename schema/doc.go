// Package schema defines the wire records exchanged with the dately service
// and the error taxonomy shared by all client operations.
//
// Listing payloads are lenient: a missing collection field decodes to a nil
// slice and operations normalize it to empty, screens never have to
// distinguish "absent" from "no items".
package schema
