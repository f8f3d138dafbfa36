package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// isoLayouts are the ISO-8601 shapes accepted for event dates, tried in
// order. Layouts with fractional seconds also match input without them.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ISOTime is a timestamp parsed from an ISO-8601 string. It remembers the
// exact text it was parsed from so the value serializes back byte-identically:
// no timezone is attached to input that carried none, none is stripped from
// input that did, and trailing fractional-second zeros survive (reformatting
// through a layout would drop them). The zero ISOTime is not valid.
type ISOTime struct {
	time.Time
	text string
}

// ParseISOTime parses s against the accepted ISO-8601 layouts.
func ParseISOTime(s string) (ISOTime, error) {
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return ISOTime{Time: t, text: s}, nil
		}
	}
	return ISOTime{}, fmt.Errorf("parse %q: not a recognized ISO 8601 timestamp", s)
}

// String returns the exact text the timestamp was parsed from.
func (t ISOTime) String() string {
	if t.text == "" {
		return t.Format(time.RFC3339)
	}
	return t.text
}

// MarshalJSON implements json.Marshaler.
func (t ISOTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *ISOTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseISOTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer. The timestamp is stored as the exact text
// it parses from, so a database round trip cannot normalize it.
func (t ISOTime) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner.
func (t *ISOTime) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("scan ISOTime: unsupported type %T", src)
	}
	parsed, err := ParseISOTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
