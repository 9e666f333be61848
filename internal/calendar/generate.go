package calendar

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// DaysPerWeek is the length of a full week row.
const DaysPerWeek = 5

// WeekMode controls where week rows break.
type WeekMode int

const (
	// WeekRolling fills rows with five consecutive weekdays counted from the
	// range start or from the first weekday of a month. This is the default.
	WeekRolling WeekMode = iota
	// WeekCalendar also breaks rows on Mondays so each row is a Mon-Fri week.
	WeekCalendar
)

func (m WeekMode) String() string {
	if m == WeekCalendar {
		return "calendar"
	}
	return "rolling"
}

// ParseWeekMode parses "rolling" or "calendar". Empty means rolling.
func ParseWeekMode(s string) (WeekMode, error) {
	switch s {
	case "", "rolling":
		return WeekRolling, nil
	case "calendar":
		return WeekCalendar, nil
	}
	return WeekRolling, fmt.Errorf("invalid week mode %q (expected rolling or calendar)", s)
}

// Week is one row of up to five weekdays inside a single month.
type Week struct {
	Dates []Date
}

func (w Week) Len() int { return len(w.Dates) }

// Full reports whether the row has all five weekdays.
func (w Week) Full() bool { return len(w.Dates) == DaysPerWeek }

// Label returns "Mar 11 - Mar 14" for the row's first and last date.
func (w Week) Label() string {
	if len(w.Dates) == 0 {
		return ""
	}
	return w.Dates[0].Short() + " - " + w.Dates[len(w.Dates)-1].Short()
}

// Rollup computes the row's aggregate symbol.
func (w Week) Rollup(store Marks, locks LockSet) Symbol {
	return ComputeRollup(w.Dates, store, locks)
}

// Month groups the week rows of one calendar month.
type Month struct {
	Year  int
	Month time.Month
	Weeks []Week
}

// Label returns the month name, e.g. "March".
func (m Month) Label() string {
	return m.Month.String()
}

// Dates returns every date of the month's rows in order.
func (m Month) Dates() []Date {
	var out []Date
	for _, w := range m.Weeks {
		out = append(out, w.Dates...)
	}
	return out
}

var weekdayRule = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}

// Weekdays returns every Monday-Friday date in [start, end] in order.
// It returns nil when start is after end or either bound is invalid.
func Weekdays(start, end Date) []Date {
	if !start.IsValid() || !end.IsValid() || start.After(end) {
		return nil
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: weekdayRule,
		Dtstart:   start.Time(),
	})
	if err != nil {
		return nil
	}

	occurrences := r.Between(start.Time(), end.Time(), true)
	dates := make([]Date, len(occurrences))
	for i, t := range occurrences {
		dates[i] = DateOf(t)
	}
	return dates
}

// Generate lays out the weekdays of [start, end] as months of week rows.
// A row ends when it holds five days, when the month changes, when the range
// ends, and in WeekCalendar mode also before every Monday.
func Generate(start, end Date, mode WeekMode) []Month {
	var months []Month
	var week []Date

	flush := func() {
		if len(week) == 0 {
			return
		}
		last := len(months) - 1
		months[last].Weeks = append(months[last].Weeks, Week{Dates: week})
		week = nil
	}

	for _, d := range Weekdays(start, end) {
		last := len(months) - 1
		switch {
		case last < 0 || months[last].Year != d.Year || months[last].Month != d.Month:
			flush()
			months = append(months, Month{Year: d.Year, Month: d.Month})
		case len(week) == DaysPerWeek:
			flush()
		case mode == WeekCalendar && d.Weekday() == time.Monday:
			flush()
		}
		week = append(week, d)
	}
	flush()

	return months
}
