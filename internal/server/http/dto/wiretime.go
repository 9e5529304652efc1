package dto

import (
	"errors"
	"strings"
	"time"
)

// wireTimeLayout is the date format used on the wire: ISO-8601 without a
// timezone offset. Input additionally accepts fractional seconds and a
// trailing Z; output always omits both.
const wireTimeLayout = "2006-01-02T15:04:05"

var errInvalidWireTime = errors.New("invalid date format")

// WireTime wraps time.Time with the API's serialization contract. Values are
// treated as UTC throughout.
type WireTime time.Time

// Time returns the wrapped value.
func (w WireTime) Time() time.Time {
	return time.Time(w)
}

// MarshalJSON writes the timestamp without milliseconds or zone suffix.
func (w WireTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(w).UTC().Format(wireTimeLayout) + `"`), nil
}

// UnmarshalJSON reads the wire layout, optionally with fractional seconds
// and a trailing Z.
func (w *WireTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return errInvalidWireTime
	}

	if t, err := time.Parse(wireTimeLayout, s); err == nil {
		*w = WireTime(t)
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*w = WireTime(t.UTC())
		return nil
	}
	return errInvalidWireTime
}
