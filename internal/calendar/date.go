package calendar

import (
	"fmt"
	"time"
)

// KeyLayout is the canonical YYYY-MM-DD encoding of a Date.
const KeyLayout = "2006-01-02"

// Date is a calendar date with no time-of-day and no location.
// Two Dates are equal iff they name the same calendar day, so a Date can be
// used directly as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year/month/day, normalizing overflow the same
// way time.Date does (Feb 30 becomes Mar 2).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseKey parses the canonical YYYY-MM-DD form.
func ParseKey(s string) (Date, error) {
	t, err := time.Parse(KeyLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsValid reports whether d names a real calendar day.
func (d Date) IsValid() bool {
	if d.Year <= 0 {
		return false
	}
	return DateOf(d.Time()) == d
}

// String returns the canonical key, e.g. "2025-03-11".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// unixEpochOrdinal is the ordinal of 1970-01-01.
const unixEpochOrdinal = 719162

// Ordinal returns the number of days since 0001-01-01, which has ordinal 0.
func (d Date) Ordinal() int {
	return int(d.Time().Unix()/86400) + unixEpochOrdinal
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekend reports whether d falls on Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddDays returns the date n days after d; n may be negative.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o.
func (d Date) Compare(o Date) int {
	a, b := d.Ordinal(), o.Ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// Short returns a label like "Mar 11".
func (d Date) Short() string {
	return d.Time().Format("Jan 2")
}
