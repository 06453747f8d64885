package typedid

import (
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// The markers are erased on the wire: every form below is exactly what the
// underlying library produces for the raw value, and decoding reattaches the
// tags purely from the static type of the target.

// MarshalText implements encoding.TextMarshaler, emitting the canonical
// string form. encoding/json picks this up as well.
func (id ID[T, V]) MarshalText() ([]byte, error) {
	return id.val.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the same
// forms as Parse.
func (id *ID[T, V]) UnmarshalText(data []byte) error {
	u, err := uuid.ParseBytes(data)
	if err != nil {
		return &ParseError{Input: string(data), Err: err}
	}
	id.val = u
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler, emitting the raw 16
// bytes.
func (id ID[T, V]) MarshalBinary() ([]byte, error) {
	return id.val.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID[T, V]) UnmarshalBinary(data []byte) error {
	if err := id.val.UnmarshalBinary(data); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting the canonical string form
// as a scalar.
func (id ID[T, V]) MarshalYAML() (interface{}, error) {
	return id.val.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (id *ID[T, V]) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	return id.UnmarshalText([]byte(text))
}
