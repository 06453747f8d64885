package typedid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSQLValue(t *testing.T) {
	id := New[user]()
	v, err := id.Value()
	assert.NoError(t, err)
	assert.Equal(t, id.String(), v)
}

func TestSQLScan(t *testing.T) {
	id := New[user]()

	var fromString ID[user, V4]
	assert.NoError(t, fromString.Scan(id.String()))
	assert.Equal(t, id, fromString)

	var fromBytes ID[user, V4]
	raw := id.UUID()
	assert.NoError(t, fromBytes.Scan(raw[:]))
	assert.Equal(t, id, fromBytes)

	var bad ID[user, V4]
	err := bad.Scan(42)
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}
