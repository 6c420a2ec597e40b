// Package uid provides identifier generators behind a small interface.
//
// Two flavours are used by the application: UUIDs for request correlation and
// token IDs, and Mongo ObjectIDs for entity primary keys.
package uid

// StringID generates opaque string identifiers.
type StringID interface {
	// Generate returns a new identifier.
	Generate() string
}
