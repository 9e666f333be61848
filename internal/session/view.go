package session

import (
	"time"

	"github.com/Haze-32/tjk/internal/calendar"
)

// DayView is one day box as the presentation layer draws it.
type DayView struct {
	Date   calendar.Date
	Mark   calendar.Mark // effective mark: Success for locked days
	Locked bool
	Open   bool
}

// WeekView is one week row with its rollup.
type WeekView struct {
	Label  string
	Days   []DayView
	Rollup calendar.Symbol
}

// MonthView is one month section.
type MonthView struct {
	Label string
	Year  int
	Month time.Month
	Weeks []WeekView
}

// Summary counts the state of the whole calendar.
type Summary struct {
	Days        int
	Success     int
	Failure     int
	Unset       int
	Locked      int
	FullWeeks   int // weeks with the $ rollup
	FailedWeeks int
}

// Snapshot renders the current state into views.
func (s *Session) Snapshot() []MonthView {
	out := make([]MonthView, 0, len(s.months))
	for _, m := range s.months {
		mv := MonthView{Label: m.Label(), Year: m.Year, Month: m.Month}
		for _, w := range m.Weeks {
			wv := WeekView{
				Label:  w.Label(),
				Rollup: s.engine.Rollup(w, s.marks),
			}
			for _, d := range w.Dates {
				wv.Days = append(wv.Days, DayView{
					Date:   d,
					Mark:   s.engine.Effective(s.marks, d),
					Locked: s.engine.IsLocked(d),
					Open:   s.hasOpen && s.open == d,
				})
			}
			mv.Weeks = append(mv.Weeks, wv)
		}
		out = append(out, mv)
	}
	return out
}

// Summary tallies days and week rollups.
func (s *Session) Summary() Summary {
	var sum Summary
	for _, m := range s.Snapshot() {
		for _, w := range m.Weeks {
			switch w.Rollup {
			case calendar.SymbolSuccess:
				sum.FullWeeks++
			case calendar.SymbolFailure:
				sum.FailedWeeks++
			}
			for _, d := range w.Days {
				sum.Days++
				if d.Locked {
					sum.Locked++
				}
				switch d.Mark {
				case calendar.Success:
					sum.Success++
				case calendar.Failure:
					sum.Failure++
				default:
					sum.Unset++
				}
			}
		}
	}
	return sum
}

// Slots places a week's days into five columns. In calendar mode column i
// is weekday Monday+i; in rolling mode days fill the columns in order.
// Empty columns are nil.
func (w WeekView) Slots(mode calendar.WeekMode) [calendar.DaysPerWeek]*DayView {
	var slots [calendar.DaysPerWeek]*DayView
	for i := range w.Days {
		idx := i
		if mode == calendar.WeekCalendar {
			idx = int(w.Days[i].Date.Weekday()) - int(time.Monday)
		}
		if idx >= 0 && idx < calendar.DaysPerWeek {
			slots[idx] = &w.Days[i]
		}
	}
	return slots
}

// Columns returns the five column headers matching Slots.
func Columns(mode calendar.WeekMode) [calendar.DaysPerWeek]string {
	if mode == calendar.WeekCalendar {
		return [calendar.DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	}
	return [calendar.DaysPerWeek]string{"1", "2", "3", "4", "5"}
}
