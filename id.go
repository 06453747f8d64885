package typedid

import (
	"bytes"

	"github.com/google/uuid"
)

// ID is a uuid.UUID tagged at compile time by an entity marker T and a
// version marker V. Neither marker is stored; an ID is exactly 16 bytes.
// Two instantiations with different markers are distinct Go types, so the
// compiler rejects comparison and assignment across them. The zero value is
// the nil identifier.
type ID[T any, V Version] struct {
	val uuid.UUID
}

// New returns a fresh random (version 4) identifier for entity T.
func New[T any]() ID[T, V4] {
	return ID[T, V4]{val: uuid.New()}
}

// NewV1 returns a fresh time-based (version 1) identifier for entity T.
func NewV1[T any]() (ID[T, V1], error) {
	u, err := uuid.NewUUID()
	if err != nil {
		return ID[T, V1]{}, err
	}
	return ID[T, V1]{val: u}, nil
}

// NewV3 returns the name-based MD5 (version 3) identifier of data within the
// given namespace. The same namespace and data always yield the same ID.
func NewV3[T any](space uuid.UUID, data []byte) ID[T, V3] {
	return ID[T, V3]{val: uuid.NewMD5(space, data)}
}

// NewV5 returns the name-based SHA-1 (version 5) identifier of data within
// the given namespace. The same namespace and data always yield the same ID.
func NewV5[T any](space uuid.UUID, data []byte) ID[T, V5] {
	return ID[T, V5]{val: uuid.NewSHA1(space, data)}
}

// NewV6 returns a fresh reordered time-based (version 6) identifier for
// entity T.
func NewV6[T any]() (ID[T, V6], error) {
	u, err := uuid.NewV6()
	if err != nil {
		return ID[T, V6]{}, err
	}
	return ID[T, V6]{val: u}, nil
}

// NewV7 returns a fresh time-ordered (version 7) identifier for entity T.
func NewV7[T any]() (ID[T, V7], error) {
	u, err := uuid.NewV7()
	if err != nil {
		return ID[T, V7]{}, err
	}
	return ID[T, V7]{val: u}, nil
}

// Parse decodes text in any form the underlying library accepts: canonical
// hyphenated, braced, urn-prefixed, hyphenless, upper or lower case. It
// returns a *ParseError when the text is not a well-formed UUID. The parsed
// value's version bits are not checked against V; use FromUUID for that.
func Parse[T any, V Version](text string) (ID[T, V], error) {
	u, err := uuid.Parse(text)
	if err != nil {
		return ID[T, V]{}, &ParseError{Input: text, Err: err}
	}
	return ID[T, V]{val: u}, nil
}

// MustParse is Parse that panics on malformed input. Intended for
// initializing package-level identifiers from literals.
func MustParse[T any, V Version](text string) ID[T, V] {
	id, err := Parse[T, V](text)
	if err != nil {
		panic(err)
	}
	return id
}

// FromUUID wraps an untyped UUID under markers T and V, verifying that the
// value's version bits match V. It returns a *VersionError on mismatch.
// The Any marker accepts every version.
func FromUUID[T any, V Version](u uuid.UUID) (ID[T, V], error) {
	var v V
	if want := v.uuidVersion(); want != 0 && u.Version() != want {
		return ID[T, V]{}, &VersionError{Want: want, Got: u.Version()}
	}
	return ID[T, V]{val: u}, nil
}

// FromUUIDUnchecked wraps an untyped UUID under markers T and V without any
// validation. The caller vouches that the value belongs to entity T and was
// produced by scheme V; nothing rechecks either claim. Escape hatch for
// interop with untyped identifiers.
func FromUUIDUnchecked[T any, V Version](u uuid.UUID) ID[T, V] {
	return ID[T, V]{val: u}
}

// FromBytes wraps a raw 16-byte value under markers T and V. It returns a
// *ParseError when b is not exactly 16 bytes. Like FromUUIDUnchecked, the
// version bits are not validated.
func FromBytes[T any, V Version](b []byte) (ID[T, V], error) {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return ID[T, V]{}, &ParseError{Err: err}
	}
	return ID[T, V]{val: u}, nil
}

// Nil returns the all-zero identifier. Equivalent to the zero value.
func Nil[T any, V Version]() ID[T, V] {
	return ID[T, V]{}
}

// Retag reinterprets id as naming entity T2 instead of T, keeping the
// underlying value and version marker. The new tag must be spelled at the
// call site: Retag[Order](userID).
func Retag[T2, T any, V Version](id ID[T, V]) ID[T2, V] {
	return ID[T2, V]{val: id.val}
}

// UUID returns the underlying untyped value, discarding both markers.
// There is no implicit way back; rewrap with FromUUID or FromUUIDUnchecked.
func (id ID[T, V]) UUID() uuid.UUID {
	return id.val
}

// String returns the canonical lowercase hyphenated form,
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func (id ID[T, V]) String() string {
	return id.val.String()
}

// IsNil reports whether id is the all-zero identifier.
func (id ID[T, V]) IsNil() bool {
	return id.val == uuid.Nil
}

// Version returns the version encoded in the underlying value's bits, which
// for unchecked wraps may differ from what marker V promises.
func (id ID[T, V]) Version() uuid.Version {
	return id.val.Version()
}

// Compare returns -1, 0 or 1 ordering the two identifiers by the underlying
// value's byte-lexicographic order.
func (id ID[T, V]) Compare(other ID[T, V]) int {
	return bytes.Compare(id.val[:], other.val[:])
}
