package models

import (
	"fmt"
	"strings"
	"time"
)

const displayDateLayout = "2006-01-02"

// Date is a calendar date exchanged with the API as an ISO-8601 string.
// The backend sends full datetimes; only the date portion is meaningful for
// display, but a full datetime is sent back on submit.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{t.UTC().Truncate(24 * time.Hour)}
}

func Today() Date {
	return NewDate(time.Now())
}

// ParseDate accepts a "2006-01-02" display string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(displayDateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

// Display returns the date truncated to its date portion.
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(displayDateLayout)
}

// MarshalJSON emits a full ISO-8601 datetime, the form the API expects on
// create and update.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.UTC().Format(time.RFC3339) + `"`), nil
}

// UnmarshalJSON accepts full ISO-8601 datetimes as well as bare dates.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range []string{time.RFC3339, displayDateLayout, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unsupported date format: %q", s)
}
