package types

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"golang.org/x/text/cases"
)

const IdTokenMaxLength = 20

var folder = cases.Fold()

// IdTokenKey is the case-folded form of an IdToken, suitable as a map key.
type IdTokenKey string

// IdToken identifies a charge tag. Tokens compare case-insensitively with
// Equal; == is not available on this type. The original casing is kept for
// display and for the wire.
type IdToken struct {
	_     [0]func()
	value string
}

func NewIdToken(raw string) (IdToken, error) {
	if err := checkLength(raw, IdTokenMaxLength); err != nil {
		return IdToken{}, err
	}
	return IdToken{value: raw}, nil
}

// NewOptionalIdToken returns nil for a nil input, otherwise a validated token.
func NewOptionalIdToken(raw *string) (*IdToken, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := NewIdToken(*raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// String returns the token in its original casing.
func (t IdToken) String() string {
	return t.value
}

// Key returns the folded form of the token. Two tokens are Equal exactly when
// their keys are equal.
func (t IdToken) Key() IdTokenKey {
	return IdTokenKey(folder.String(t.value))
}

func (t IdToken) Equal(other IdToken) bool {
	return t.Key() == other.Key()
}

func (t IdToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value)
}

func (t *IdToken) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := NewIdToken(raw)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t IdToken) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.value)
}

func (t *IdToken) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	raw, ok := bson.RawValue{Type: bt, Value: data}.StringValueOK()
	if !ok {
		return fmt.Errorf("cannot decode bson %s into id token", bt)
	}
	v, err := NewIdToken(raw)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
