// Package apidate holds the timestamp and calendar-day codecs shared by the
// API and its client. The backend emits ISO-8601 timestamps that may or may
// not carry fractional seconds or a trailing zone marker, so decoding walks a
// list of known layouts before giving up. Day-scoped values travel as bare
// "yyyy-MM-dd" strings with no time or zone component.
package apidate

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DayLayout is the wire format for day-scoped query params and fields.
	DayLayout = "2006-01-02"

	marshalLayout = "2006-01-02T15:04:05.000000Z07:00"
)

// timestampLayouts is tried in order. Layouts without a zone suffix parse as
// UTC, which matches how the backend serializes naive datetimes.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	DayLayout,
}

// ParseTimestamp decodes a point-in-time value in any of the supported
// ISO-8601 variants. The returned time is normalized to UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", s)
}

// ParseDay decodes a bare calendar-day string into a UTC midnight time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day string %q: expected yyyy-MM-dd", s)
	}
	return t.UTC(), nil
}

// DayString formats a time as the UTC calendar day it falls on.
func DayString(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// Today returns the current UTC calendar day as a wire string.
func Today() string {
	return DayString(time.Now())
}

// Time is a time.Time that marshals as an ISO-8601 UTC timestamp with
// microsecond precision and unmarshals any of the supported variants.
type Time struct {
	time.Time
}

// New wraps a time.Time, normalizing to UTC.
func New(t time.Time) Time {
	return Time{t.UTC()}
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(marshalLayout) + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// Day is a calendar date that marshals as "yyyy-MM-dd".
type Day struct {
	time.Time
}

// DayOf truncates a time to the UTC calendar day it falls on.
func DayOf(t time.Time) Day {
	u := t.UTC()
	return Day{time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.UTC().Format(DayLayout) + `"`), nil
}

func (d *Day) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

func (d Day) String() string {
	return d.UTC().Format(DayLayout)
}
