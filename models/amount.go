package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Amount is a token amount as reported by the gateway. It is kept in its
// decimal string form so that on-chain integer amounts larger than 2^53 are
// not rounded. The gateway may send it either as a JSON number or a string.
type Amount string

// UnmarshalJSON accepts a JSON number, a JSON string holding a number, or
// null.
func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}

	var v any
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()
	if err := decoder.Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case json.Number:
		*a = Amount(value.String())
		return nil
	case string:
		if _, err := json.Number(value).Float64(); err != nil {
			return fmt.Errorf("amount %q is not a number", value)
		}
		*a = Amount(value)
		return nil
	default:
		return fmt.Errorf("amount must be a number or a string, got %T", v)
	}
}

// String returns the decimal representation.
func (a Amount) String() string {
	return string(a)
}
