package main

import (
	"database/sql/driver"
	"encoding/json"
	"testing"
	"time"
)

func TestDateTime_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"date only", `"2026-03-01"`, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", `"2026-03-01T12:34:56Z"`, time.Date(2026, 3, 1, 12, 34, 56, 0, time.UTC)},
		{"null", `null`, time.Time{}},
		{"empty string", `""`, time.Time{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d DateTime
			if err := json.Unmarshal([]byte(tc.input), &d); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !d.Time.Equal(tc.want) {
				t.Fatalf("got %v want %v", d.Time, tc.want)
			}
		})
	}
}

func TestDateTime_UnmarshalText(t *testing.T) {
	var d DateTime
	if err := d.UnmarshalText([]byte("2026-03-01")); err != nil {
		t.Fatalf("unmarshal text: %v", err)
	}
	if want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC); !d.Time.Equal(want) {
		t.Fatalf("got %v want %v", d.Time, want)
	}
}

func TestDateTime_UnmarshalJSON_Invalid(t *testing.T) {
	var d DateTime
	if err := json.Unmarshal([]byte(`"yesterday"`), &d); err == nil {
		t.Fatalf("expected error")
	}
}

func TestDateTime_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(DateTime{Time: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-03-01T00:00:00Z"` {
		t.Fatalf("got %s", string(b))
	}

	b, err = json.Marshal(DateTime{})
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(b) != "null" {
		t.Fatalf("got %s, want null", string(b))
	}
}

func TestDateTime_Value(t *testing.T) {
	v, err := DateTime{}.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil for zero value")
	}

	v, err = DateTime{Time: time.Date(2026, 3, 2, 3, 4, 5, 0, time.UTC)}.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if _, ok := v.(time.Time); !ok {
		t.Fatalf("expected time.Time, got %T", v)
	}
}

func TestDateTime_Scan(t *testing.T) {
	tm := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var d DateTime
	if err := d.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("expected zero")
	}

	if err := d.Scan(tm); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if !d.Time.Equal(tm) {
		t.Fatalf("got %v want %v", d.Time, tm)
	}

	if err := d.Scan("2026-03-01"); err != nil {
		t.Fatalf("scan date string: %v", err)
	}
	if !d.Time.Equal(tm) {
		t.Fatalf("got %v want %v", d.Time, tm)
	}

	if err := d.Scan(driver.Value([]byte("2026-03-01T00:00:00Z"))); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if !d.Time.Equal(tm) {
		t.Fatalf("got %v want %v", d.Time, tm)
	}

	if err := d.Scan(42); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}
