package typedid

import (
	"fmt"

	"github.com/google/uuid"
)

// ParseError reports textual or serialized input that is not a well-formed
// UUID. It wraps the underlying library's error.
type ParseError struct {
	// Input is the offending text, empty when the source was binary.
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("typedid: %v", e.Err)
	}
	return fmt.Sprintf("typedid: parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// VersionError reports a checked wrap of a UUID whose version bits do not
// match the target version marker.
type VersionError struct {
	Want uuid.Version
	Got  uuid.Version
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("typedid: wrong version: want %d, got %d", e.Want, e.Got)
}
