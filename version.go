package typedid

import "github.com/google/uuid"

// Version constrains the scheme marker of an ID. The marker selects, at
// compile time, which UUID generation scheme an identifier belongs to;
// markers carry no runtime data. The unexported method keeps the set closed:
// only the markers declared in this package satisfy the constraint.
type Version interface {
	uuidVersion() uuid.Version
}

// Any tags identifiers with no particular version. Parsing and wrapping
// accept values of every version under this marker.
type Any struct{}

// V1 tags time-based identifiers (timestamp and node ID).
type V1 struct{}

// V3 tags name-based identifiers hashed with MD5.
type V3 struct{}

// V4 tags randomly generated identifiers.
type V4 struct{}

// V5 tags name-based identifiers hashed with SHA-1.
type V5 struct{}

// V6 tags reordered time-based identifiers, sortable by creation time.
type V6 struct{}

// V7 tags Unix-epoch time-ordered identifiers.
type V7 struct{}

// V8 tags custom-format identifiers. The underlying library offers no v8
// generation, so this marker supports parsing and wrapping only.
type V8 struct{}

func (Any) uuidVersion() uuid.Version { return 0 }
func (V1) uuidVersion() uuid.Version  { return 1 }
func (V3) uuidVersion() uuid.Version  { return 3 }
func (V4) uuidVersion() uuid.Version  { return 4 }
func (V5) uuidVersion() uuid.Version  { return 5 }
func (V6) uuidVersion() uuid.Version  { return 6 }
func (V7) uuidVersion() uuid.Version  { return 7 }
func (V8) uuidVersion() uuid.Version  { return 8 }
