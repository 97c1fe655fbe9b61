package main

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// DateTime wraps time.Time with lenient JSON parsing for query inputs.
//
// Accepted forms: a date-only string "2006-01-02" (interpreted as UTC
// midnight), a full RFC3339 / RFC3339Nano timestamp, or null. The zero value
// marshals as null, so optional from/to filters round-trip cleanly.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	return d.parse(s)
}

// UnmarshalText makes DateTime usable as a query or form parameter.
func (d *DateTime) UnmarshalText(b []byte) error {
	return d.parse(string(b))
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.Time.Format(time.RFC3339Nano))
}

// Value implements driver.Valuer so DateTime can be bound as a SQL parameter.
func (d DateTime) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}

	return d.Time, nil
}

// Scan implements sql.Scanner.
func (d *DateTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("unsupported Scan type for DateTime: %T", src)
	}
}

func (d *DateTime) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	if len(s) == len(dateOnlyLayout) {
		if t, err := time.ParseInLocation(dateOnlyLayout, s, time.UTC); err == nil {
			d.Time = t
			return nil
		}
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("invalid datetime %q (expected %s or RFC3339)", s, dateOnlyLayout)
}
