package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp layouts accepted in the backing file.
// The LocalISO layouts are the offset-less ISO-8601 forms older task files were
// written with: microseconds are present unless they were zero.
const (
	RFC3339Layout         = time.RFC3339Nano
	LocalISOLayout        = "2006-01-02T15:04:05.000000"
	LocalISOSecondsLayout = "2006-01-02T15:04:05"
)

// Timestamp is a point in time stored in the backing file.
// It remembers the layout it was parsed from so that rewriting an unchanged
// task reproduces the original text.
type Timestamp struct {
	time.Time
	layout string
}

// NewTimestamp wraps t as a UTC timestamp written in RFC 3339 form
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t.UTC()}
}

// ParseTimestamp parses value in any accepted layout
func ParseTimestamp(value string) (*Timestamp, error) {
	if t, err := time.Parse(RFC3339Layout, value); err == nil {
		return &Timestamp{Time: t, layout: RFC3339Layout}, nil
	}
	for _, layout := range []string{LocalISOLayout, LocalISOSecondsLayout} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil && t.Format(layout) == value {
			return &Timestamp{Time: t, layout: layout}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// String formats the timestamp in its layout
func (ts Timestamp) String() string {
	layout := ts.layout
	if layout == "" {
		layout = RFC3339Layout
	}
	return ts.Time.Format(layout)
}

// MarshalJSON implements json.Marshaler
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimestamp, string(data))
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*ts = *parsed
	return nil
}
