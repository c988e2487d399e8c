package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeJson(t *testing.T) {
	location := time.FixedZone("CET", 3600)
	dt := NewDateTime(time.Date(2024, 3, 1, 10, 30, 0, 0, location))

	out, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01T09:30:00Z"`, string(out))

	var parsed DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T10:30:00.123+01:00"`), &parsed))
	assert.True(t, parsed.Equal(time.Date(2024, 3, 1, 9, 30, 0, 123000000, time.UTC)))
}

func TestDateTimeInvalid(t *testing.T) {
	var parsed DateTime
	err := json.Unmarshal([]byte(`"yesterday"`), &parsed)
	var parseErr *time.ParseError
	assert.ErrorAs(t, err, &parseErr)

	var payload struct {
		Timestamp *DateTime `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"timestamp":null}`), &payload))
	assert.Nil(t, payload.Timestamp)
}
