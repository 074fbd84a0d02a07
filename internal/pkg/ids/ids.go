// Package ids generates and recognises entity identifiers.
package ids

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// New returns a fresh ULID string.
func New() string {
	return ulid.Make().String()
}

// IsID reports whether s has the shape of an entity id. Anything else is
// treated as a slug or natural key by callers.
func IsID(s string) bool {
	if len(s) != ulid.EncodedSize {
		return false
	}
	_, err := ulid.ParseStrict(strings.ToUpper(s))
	return err == nil
}

// Normalize returns the canonical upper-case form of an entity id. Values
// that are not ids are returned unchanged.
func Normalize(s string) string {
	if IsID(s) {
		return strings.ToUpper(s)
	}
	return s
}

// BookingReference returns a public booking reference such as
// "BK-01J0ZQ4Y8M3T6W2N5R7S9V1X3Z".
func BookingReference() string {
	return "BK-" + ulid.Make().String()
}
