package typedid

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestTextRoundTrip(t *testing.T) {
	id := New[user]()
	text, err := id.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, id.String(), string(text))

	var decoded ID[user, V4]
	assert.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, id, decoded)
}

func TestUnmarshalTextFailure(t *testing.T) {
	var id ID[user, V4]
	err := id.UnmarshalText([]byte("not-a-uuid"))
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, "not-a-uuid", perr.Input)
}

func TestBinaryRoundTrip(t *testing.T) {
	id := New[user]()
	raw, err := id.MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, raw, 16)

	var decoded ID[user, V4]
	assert.NoError(t, decoded.UnmarshalBinary(raw))
	assert.Equal(t, id, decoded)

	var bad ID[user, V4]
	err = bad.UnmarshalBinary(raw[:8])
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestJSONRoundTrip(t *testing.T) {
	type record struct {
		User  ID[user, V4]  `json:"user"`
		Order ID[order, V7] `json:"order"`
	}

	v7, err := NewV7[order]()
	assert.NoError(t, err)
	in := record{User: New[user](), Order: v7}

	data, err := json.Marshal(in)
	assert.NoError(t, err)
	assert.Contains(t, string(data), in.User.String())

	var out record
	assert.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestJSONUnmarshalFailure(t *testing.T) {
	var out struct {
		User ID[user, V4] `json:"user"`
	}
	err := json.Unmarshal([]byte(`{"user":"nope"}`), &out)
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestYAMLRoundTrip(t *testing.T) {
	type record struct {
		User  ID[user, V4]  `yaml:"user"`
		Order ID[order, V4] `yaml:"order"`
	}

	in := record{User: New[user](), Order: New[order]()}
	data, err := yaml.Marshal(in)
	assert.NoError(t, err)
	assert.Contains(t, string(data), in.User.String())

	var out record
	assert.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestYAMLUnmarshalFailure(t *testing.T) {
	var out struct {
		User ID[user, V4] `yaml:"user"`
	}
	assert.Error(t, yaml.Unmarshal([]byte("user: nope\n"), &out))
}

func TestSerializedFormMatchesUnderlyingLibrary(t *testing.T) {
	raw := uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	id := FromUUIDUnchecked[user, V4](raw)

	want, err := raw.MarshalText()
	assert.NoError(t, err)
	got, err := id.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
