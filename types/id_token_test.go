package types

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func mustIdToken(t *testing.T, raw string) IdToken {
	t.Helper()
	token, err := NewIdToken(raw)
	require.NoError(t, err)
	return token
}

func TestNewIdToken(t *testing.T) {
	token := mustIdToken(t, "abcd-01234")
	assert.Equal(t, "abcd-01234", token.String())

	_, err := NewIdToken(strings.Repeat("a", 21))
	var tooLong *TooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, &TooLongError{Actual: 21, Max: 20}, tooLong)

	_, err = NewIdToken(strings.Repeat("a", 20))
	assert.NoError(t, err)
	_, err = NewIdToken("")
	assert.NoError(t, err)
}

func TestIdTokenEqualIgnoresCase(t *testing.T) {
	lower := mustIdToken(t, "abcd-01234")
	upper := mustIdToken(t, "ABCD-01234")
	mixed := mustIdToken(t, "AbCd-01234")
	other := mustIdToken(t, "efgh-01234")

	assert.True(t, lower.Equal(lower))
	assert.True(t, lower.Equal(upper))
	assert.True(t, upper.Equal(lower))
	assert.True(t, upper.Equal(mixed))
	assert.True(t, lower.Equal(mixed))
	assert.False(t, lower.Equal(other))
	assert.False(t, other.Equal(mixed))

	// casing is kept for display
	assert.Equal(t, "AbCd-01234", mixed.String())
}

func TestIdTokenKey(t *testing.T) {
	lower := mustIdToken(t, "abcd-01234")
	upper := mustIdToken(t, "ABCD-01234")
	assert.Equal(t, lower.Key(), upper.Key())
	assert.NotEqual(t, lower.Key(), mustIdToken(t, "abcd-01235").Key())

	seen := map[IdTokenKey]string{lower.Key(): lower.String()}
	assert.Equal(t, "abcd-01234", seen[upper.Key()])
}

func TestIdTokenUnicodeFolding(t *testing.T) {
	a := mustIdToken(t, "ÄBC-ÖÜ-01")
	b := mustIdToken(t, "äbc-öü-01")
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
}

func TestIdTokenJson(t *testing.T) {
	var payload struct {
		IdTag IdToken `json:"idTag"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"idTag":"AbCd-01234"}`), &payload))
	assert.Equal(t, "AbCd-01234", payload.IdTag.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"idTag":"AbCd-01234"}`, string(out))

	err = json.Unmarshal([]byte(`{"idTag":"`+strings.Repeat("a", 21)+`"}`), &payload)
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestIdTokenBson(t *testing.T) {
	type document struct {
		IdTag  IdToken  `bson:"id_tag"`
		Parent *IdToken `bson:"parent,omitempty"`
	}
	in := document{IdTag: mustIdToken(t, "Tag-1")}
	data, err := bson.Marshal(in)
	require.NoError(t, err)

	var out document
	require.NoError(t, bson.Unmarshal(data, &out))
	assert.Equal(t, "Tag-1", out.IdTag.String())
	assert.Nil(t, out.Parent)

	data, err = bson.Marshal(bson.M{"id_tag": strings.Repeat("a", 21)})
	require.NoError(t, err)
	assert.ErrorIs(t, bson.Unmarshal(data, &out), ErrTooLong)
}

func TestIdTokenRoundTrip(t *testing.T) {
	for _, raw := range []string{"", "abcd-01234", "AbCd-01234", "ÄBC-ÖÜ-01", strings.Repeat("z", 20)} {
		token := mustIdToken(t, raw)
		again, err := NewIdToken(token.String())
		require.NoError(t, err)
		assert.True(t, again.Equal(token), raw)
		assert.Equal(t, raw, again.String())
	}
}

func TestIdTokenKeyConcurrent(t *testing.T) {
	token := mustIdToken(t, "AbCd-01234")
	want := mustIdToken(t, "abcd-01234").Key()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, token.Key())
		}()
	}
	wg.Wait()
}
