package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for profile birth dates,
// statistics buckets and query parameters.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date. The result is midnight UTC;
// only its year, month and day are meaningful.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Msg: fmt.Sprintf("%q is not a YYYY-MM-DD date", s)}
	}
	return t, nil
}

// DayKey returns the calendar date of t as observed in t's own location.
// A record created at 23:00+07:00 belongs to that day even though the same
// instant is already the next day in UTC.
func DayKey(t time.Time) string {
	return t.Format(DateLayout)
}
