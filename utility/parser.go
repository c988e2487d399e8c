package utility

import (
	"encoding/json"
)

// ParseJson splits an OCPP-J frame into its elements, leaving each element undecoded.
func ParseJson(b []byte) ([]json.RawMessage, error) {
	var array []json.RawMessage
	err := json.Unmarshal(b, &array)
	return array, err
}
