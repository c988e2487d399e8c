package utility

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson(t *testing.T) {
	fields, err := ParseJson([]byte(`[2,"id","Heartbeat",{}]`))
	require.NoError(t, err)
	require.Len(t, fields, 4)
	assert.Equal(t, `"Heartbeat"`, string(fields[2]))

	_, err = ParseJson([]byte(`{"a":1}`))
	assert.Error(t, err)
}

func TestNewUUID(t *testing.T) {
	id := NewUUID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewUUID())
}
