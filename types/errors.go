package types

import (
	"errors"
	"fmt"
)

// ErrTooLong matches any *TooLongError with errors.Is.
var ErrTooLong = errors.New("value too long")

// TooLongError is returned when a bounded value exceeds its maximum length.
// Lengths are counted in characters.
type TooLongError struct {
	Actual int
	Max    int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("length %d exceeds maximum of %d characters", e.Actual, e.Max)
}

func (e *TooLongError) Is(target error) bool {
	return target == ErrTooLong
}

// UnknownValueError is returned when decoding a string that is not a member
// of the target enumeration.
type UnknownValueError struct {
	Type  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s value %q", e.Type, e.Value)
}

// MissingFieldError is returned when a required field is absent from a decoded value.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %s is missing", e.Field)
}
