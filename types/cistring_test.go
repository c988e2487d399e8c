package types

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCiStringBoundaries(t *testing.T) {
	cases := []struct {
		name      string
		max       int
		construct func(string) error
	}{
		{"20", 20, func(s string) error { _, err := NewCiString20Type(s); return err }},
		{"25", 25, func(s string) error { _, err := NewCiString25Type(s); return err }},
		{"50", 50, func(s string) error { _, err := NewCiString50Type(s); return err }},
		{"255", 255, func(s string) error { _, err := NewCiString255Type(s); return err }},
		{"500", 500, func(s string) error { _, err := NewCiString500Type(s); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, tc.construct(""))
			assert.NoError(t, tc.construct(strings.Repeat("x", tc.max)))

			err := tc.construct(strings.Repeat("x", tc.max+1))
			var tooLong *TooLongError
			require.True(t, errors.As(err, &tooLong))
			assert.Equal(t, tc.max+1, tooLong.Actual)
			assert.Equal(t, tc.max, tooLong.Max)
			assert.True(t, errors.Is(err, ErrTooLong))
		})
	}
}

func TestCiStringCountsCharacters(t *testing.T) {
	// 20 characters, 40 bytes
	raw := strings.Repeat("é", 20)
	s, err := NewCiString20Type(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, s.String())

	_, err = NewCiString20Type(raw + "é")
	var tooLong *TooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, 21, tooLong.Actual)
}

func TestCiStringKeepsValueAndComparesExactly(t *testing.T) {
	a, err := NewCiString50Type("Vendor X")
	require.NoError(t, err)
	b, err := NewCiString50Type("Vendor X")
	require.NoError(t, err)
	c, err := NewCiString50Type("vendor x")
	require.NoError(t, err)

	assert.Equal(t, "Vendor X", a.String())
	assert.True(t, a == b)
	assert.False(t, a == c)
	assert.Equal(t, 50, a.MaxLength())
}

func TestNewOptionalCiString(t *testing.T) {
	s, err := NewOptionalCiString[Len25](nil)
	require.NoError(t, err)
	assert.Nil(t, s)

	raw := "serial-0001"
	s, err = NewOptionalCiString[Len25](&raw)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, raw, s.String())

	long := strings.Repeat("1", 26)
	s, err = NewOptionalCiString[Len25](&long)
	assert.ErrorIs(t, err, ErrTooLong)
	assert.Nil(t, s)
}

func TestCiStringJson(t *testing.T) {
	var payload struct {
		Model CiString20Type `json:"model"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"model":"Model S"}`), &payload))
	assert.Equal(t, "Model S", payload.Model.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"model":"Model S"}`, string(out))

	err = json.Unmarshal([]byte(`{"model":"`+strings.Repeat("m", 21)+`"}`), &payload)
	var tooLong *TooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, 20, tooLong.Max)

	err = json.Unmarshal([]byte(`{"model":42}`), &payload)
	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestCiStringRoundTrip(t *testing.T) {
	for _, raw := range []string{"", "Vendor X", "ÄÖÜ", strings.Repeat("x", 20)} {
		v20, err := NewCiString20Type(raw)
		require.NoError(t, err)
		again20, err := NewCiString20Type(v20.String())
		require.NoError(t, err)
		assert.True(t, again20 == v20, raw)

		v500, err := NewCiString[Len500](raw)
		require.NoError(t, err)
		again500, err := NewCiString[Len500](v500.String())
		require.NoError(t, err)
		assert.True(t, again500 == v500, raw)
	}
}
