package dto

import (
	"bytes"
	"encoding/json"
)

// Amount carries a monetary value exactly as the client sent it, either as a JSON
// number or a JSON string. Parsing is left to the service so malformed values
// surface as ErrInvalidAmount instead of a generic binding error.
type Amount string

// UnmarshalJSON accepts 12.5, "12.5" and rejects objects and arrays.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// String returns the raw text.
func (a Amount) String() string { return string(a) }
