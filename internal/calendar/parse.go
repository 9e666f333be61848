package calendar

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate parses a date expression relative to the current time.
func ParseDate(s string) (Date, error) {
	return parseDate(s, time.Now())
}

// parseDate parses a date expression relative to now.
// Supports: "today", "tomorrow", "monday", "next tuesday", "on Monday",
// "2025-03-11", "Mar 11", "Mar 11 2025", "Mar 11, 2025", "March 11",
// "March 11 2025", "March 11, 2025",
// "11 Mar", "11 Mar 2025", "11 March", "11 March 2025".
func parseDate(s string, now time.Time) (Date, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSpace(strings.TrimPrefix(s, "on "))

	switch s {
	case "today":
		return DateOf(now), nil
	case "tomorrow":
		return DateOf(now).AddDays(1), nil
	}

	cleaned := strings.TrimPrefix(s, "next ")
	if wd, ok := weekdays[cleaned]; ok {
		return nextWeekday(DateOf(now), wd), nil
	}

	layouts := []string{
		KeyLayout,
		"Jan 2",
		"Jan 2 2006",
		"Jan 2, 2006",
		"January 2",
		"January 2 2006",
		"January 2, 2006",
		"2 Jan",
		"2 Jan 2006",
		"2 January",
		"2 January 2006",
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		// Layouts without a year take the current one
		if !strings.Contains(layout, "2006") {
			date := Date{Year: now.Year(), Month: t.Month(), Day: t.Day()}
			if !date.IsValid() {
				return Date{}, fmt.Errorf("invalid date %q: no %s in %d", s, t.Format("Jan 2"), now.Year())
			}
			return date, nil
		}
		return DateOf(t), nil
	}

	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// nextWeekday returns the next occurrence of wd strictly after today.
func nextWeekday(today Date, wd time.Weekday) Date {
	ahead := int(wd) - int(today.Weekday())
	if ahead <= 0 {
		ahead += 7
	}
	return today.AddDays(ahead)
}
