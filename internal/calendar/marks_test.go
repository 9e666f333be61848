package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockSet(t *testing.T) {
	locks := DefaultLocks()

	assert.True(t, IsLocked(d(time.April, 15), locks))
	assert.True(t, locks.Contains(d(time.June, 20)))
	assert.False(t, IsLocked(d(time.April, 16), locks))
	assert.False(t, IsLocked(Date{}, locks))
	assert.False(t, IsLocked(Date{2025, 13, 40}, locks))
	assert.Equal(t, []Date{d(time.April, 15), d(time.June, 20)}, locks.Dates())

	var empty LockSet
	assert.False(t, empty.Contains(d(time.April, 15)))
	assert.Zero(t, empty.Len())
}

func TestNewLockSetDropsInvalidDates(t *testing.T) {
	locks := NewLockSet(Date{2025, time.February, 30}, d(time.March, 11))
	assert.Equal(t, 1, locks.Len())
}

func TestParseLockSet(t *testing.T) {
	locks, err := ParseLockSet([]string{"2025-04-15", "Jun 20 2025"})
	require.NoError(t, err)
	assert.Equal(t, DefaultLocks().Dates(), locks.Dates())

	_, err = ParseLockSet([]string{"2025-04-15", "someday"})
	assert.ErrorContains(t, err, "someday")
}

func TestToggleMark(t *testing.T) {
	locks := DefaultLocks()
	day := d(time.March, 12)

	t.Run("sets requested mark", func(t *testing.T) {
		store := ToggleMark(Marks{}, day, Success, locks)
		assert.Equal(t, Success, store.Get(day))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("same mark twice clears", func(t *testing.T) {
		store := ToggleMark(Marks{}, day, Success, locks)
		store = ToggleMark(store, day, Success, locks)
		assert.Equal(t, Unset, store.Get(day))
		assert.Zero(t, store.Len(), "unset must be encoded by absence")
	})

	t.Run("opposite mark overwrites", func(t *testing.T) {
		store := ToggleMark(Marks{}, day, Success, locks)
		store = ToggleMark(store, day, Failure, locks)
		assert.Equal(t, Failure, store.Get(day))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("other dates untouched", func(t *testing.T) {
		other := d(time.March, 13)
		store := ToggleMark(Marks{}, other, Failure, locks)
		store = ToggleMark(store, day, Success, locks)
		store = ToggleMark(store, day, Success, locks)
		assert.Equal(t, Failure, store.Get(other))
		assert.Equal(t, []Date{other}, store.Dates())
	})

	t.Run("input store is not modified", func(t *testing.T) {
		before := ToggleMark(Marks{}, day, Success, locks)
		after := ToggleMark(before, day, Failure, locks)
		assert.Equal(t, Success, before.Get(day))
		assert.Equal(t, Failure, after.Get(day))
	})
}

func TestToggleMarkLockedDate(t *testing.T) {
	locks := DefaultLocks()
	locked := d(time.April, 15)
	store := ToggleMark(Marks{}, d(time.April, 14), Failure, locks)

	for _, requested := range []Mark{Success, Failure, Unset} {
		got := ToggleMark(store, locked, requested, locks)
		assert.Equal(t, store, got)
		assert.Equal(t, Unset, got.Get(locked))
	}
	assert.Equal(t, Success, store.Effective(locked, locks))
}

func TestToggleMarkIgnoresBadInput(t *testing.T) {
	locks := DefaultLocks()
	store := ToggleMark(Marks{}, d(time.March, 12), Success, locks)

	assert.Equal(t, store, ToggleMark(store, Date{2025, time.February, 30}, Success, locks))
	assert.Equal(t, store, ToggleMark(store, Date{}, Failure, locks))
	assert.Equal(t, store, ToggleMark(store, d(time.March, 12), Unset, locks))
	assert.Equal(t, store, ToggleMark(store, d(time.March, 12), Mark(7), locks))
}

func TestMarkStrings(t *testing.T) {
	assert.Equal(t, "✓", Success.String())
	assert.Equal(t, "✗", Failure.String())
	assert.Equal(t, "", Unset.String())
	assert.Equal(t, "$", SymbolSuccess.String())
	assert.Equal(t, "✗", SymbolFailure.String())
	assert.Equal(t, "", SymbolNone.String())
}
