package wallclock

import (
	"fmt"
	"strconv"
)

// Implements encoding/json Marshaler. The reading is serialized as the quoted
// 'HH:MM:SS' text form, never as separate numeric fields.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// Implements encoding/json Unmarshaler.
func (t *Time) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("wallclock.Time must be a json string, %w", err)
	}
	p, err := Parse(s)
	if err != nil {
		return err
	}
	*t = p
	return nil
}
