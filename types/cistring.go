package types

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Bound fixes the maximum length of a CiString.
type Bound interface {
	Max() int
}

type Len20 struct{}
type Len25 struct{}
type Len50 struct{}
type Len255 struct{}
type Len500 struct{}

func (Len20) Max() int  { return 20 }
func (Len25) Max() int  { return 25 }
func (Len50) Max() int  { return 50 }
func (Len255) Max() int { return 255 }
func (Len500) Max() int { return 500 }

// CiString is a string of at most L.Max() characters. The value is kept
// exactly as given and compared exactly with ==. Strings with different
// bounds are different types.
type CiString[L Bound] struct {
	value string
}

type CiString20Type = CiString[Len20]
type CiString25Type = CiString[Len25]
type CiString50Type = CiString[Len50]
type CiString255Type = CiString[Len255]
type CiString500Type = CiString[Len500]

// NewCiString validates raw against the bound L.
func NewCiString[L Bound](raw string) (CiString[L], error) {
	if err := checkLength(raw, maxOf[L]()); err != nil {
		return CiString[L]{}, err
	}
	return CiString[L]{value: raw}, nil
}

// NewOptionalCiString returns nil for a nil input, otherwise a validated value.
func NewOptionalCiString[L Bound](raw *string) (*CiString[L], error) {
	if raw == nil {
		return nil, nil
	}
	s, err := NewCiString[L](*raw)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func NewCiString20Type(raw string) (CiString20Type, error) {
	return NewCiString[Len20](raw)
}

func NewCiString25Type(raw string) (CiString25Type, error) {
	return NewCiString[Len25](raw)
}

func NewCiString50Type(raw string) (CiString50Type, error) {
	return NewCiString[Len50](raw)
}

func NewCiString255Type(raw string) (CiString255Type, error) {
	return NewCiString[Len255](raw)
}

func NewCiString500Type(raw string) (CiString500Type, error) {
	return NewCiString[Len500](raw)
}

// String returns the value as it was constructed.
func (s CiString[L]) String() string {
	return s.value
}

// MaxLength returns the bound of the type.
func (s CiString[L]) MaxLength() int {
	return maxOf[L]()
}

func (s CiString[L]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

func (s *CiString[L]) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := NewCiString[L](raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s CiString[L]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(s.value)
}

func (s *CiString[L]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
	if !ok {
		return fmt.Errorf("cannot decode bson %s into string", t)
	}
	v, err := NewCiString[L](raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func maxOf[L Bound]() int {
	var l L
	return l.Max()
}

func checkLength(raw string, max int) error {
	if n := utf8.RuneCountInString(raw); n > max {
		return &TooLongError{Actual: n, Max: max}
	}
	return nil
}
