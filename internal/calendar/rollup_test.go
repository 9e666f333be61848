package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// markAll sets every date in dates to mark.
func markAll(store Marks, dates []Date, mark Mark, locks LockSet) Marks {
	for _, day := range dates {
		store = store.Toggle(day, mark, locks)
	}
	return store
}

func TestComputeRollupFullWeek(t *testing.T) {
	// Mon Mar 17 - Fri Mar 21, no locked dates
	week := Weekdays(d(time.March, 17), d(time.March, 21))
	locks := DefaultLocks()

	store := markAll(Marks{}, week, Success, locks)
	assert.Equal(t, SymbolSuccess, ComputeRollup(week, store, locks))

	for _, day := range week {
		failed := store.Toggle(day, Failure, locks)
		assert.Equal(t, SymbolFailure, ComputeRollup(week, failed, locks), "failure on %s", day)

		cleared := store.Toggle(day, Success, locks)
		assert.Equal(t, Unset, cleared.Get(day))
		assert.Equal(t, SymbolNone, ComputeRollup(week, cleared, locks), "cleared %s", day)
	}
}

func TestComputeRollupShortWeek(t *testing.T) {
	// Tue Mar 11 - Fri Mar 14
	week := Generate(d(time.March, 11), d(time.March, 14), WeekCalendar)[0].Weeks[0]
	locks := DefaultLocks()

	store := markAll(Marks{}, week.Dates, Success, locks)
	assert.Equal(t, SymbolNone, week.Rollup(store, locks), "four successes are not a full week")

	store = store.Toggle(d(time.March, 13), Failure, locks)
	assert.Equal(t, SymbolFailure, week.Rollup(store, locks))
}

func TestComputeRollupLockedDaysCountAsSuccess(t *testing.T) {
	// Mon Apr 14 - Fri Apr 18, Apr 15 locked
	week := Weekdays(d(time.April, 14), d(time.April, 18))
	locks := DefaultLocks()

	var others []Date
	for _, day := range week {
		if !locks.Contains(day) {
			others = append(others, day)
		}
	}
	store := markAll(Marks{}, others, Success, locks)
	assert.Equal(t, SymbolSuccess, ComputeRollup(week, store, locks))

	assert.Equal(t, SymbolNone, ComputeRollup(week, Marks{}, locks))
}

func TestComputeRollupPrecedence(t *testing.T) {
	week := Weekdays(d(time.March, 17), d(time.March, 21))
	locks := LockSet{}

	tests := []struct {
		name  string
		marks map[Date]Mark
		want  Symbol
	}{
		{name: "empty", marks: nil, want: SymbolNone},
		{name: "partial success", marks: map[Date]Mark{week[0]: Success, week[1]: Success}, want: SymbolNone},
		{name: "single failure", marks: map[Date]Mark{week[4]: Failure}, want: SymbolFailure},
		{name: "mixed", marks: map[Date]Mark{week[0]: Success, week[1]: Failure, week[2]: Success}, want: SymbolFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := Marks{}
			for day, mark := range tt.marks {
				store = store.Toggle(day, mark, locks)
			}
			assert.Equal(t, tt.want, ComputeRollup(week, store, locks))
		})
	}

	assert.Equal(t, SymbolNone, ComputeRollup(nil, Marks{}, locks))
}
