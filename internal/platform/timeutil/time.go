// Package timeutil fixes the timestamp formats used across the API and logs.
package timeutil

import "time"

// RFC3339Millis is the wire format for every timestamp the API emits:
// RFC 3339 in UTC with exactly three fractional digits.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is the log timestamp format, six fractional digits.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// Time is a time.Time that always marshals as RFC3339Millis in UTC, so
// review timestamps and account dates render identically regardless of
// how precisely they were stored.
//
// Unmarshaling JSON null leaves the current value alone, the same way
// time.Time does.
type Time struct {
	time.Time
}

// MarshalJSON renders the time as a quoted RFC3339Millis string.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(RFC3339Millis) + `"`), nil
}

// UnmarshalJSON accepts any RFC 3339 timestamp, with or without fractional
// seconds. null is a no-op.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if parsed, err = time.Parse(time.RFC3339, s); err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}

// NewTime wraps a time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// Now is the current time as a Time.
func Now() Time {
	return Time{Time: time.Now()}
}
