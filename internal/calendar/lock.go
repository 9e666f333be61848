package calendar

import (
	"fmt"
	"sort"
)

// LockSet is an immutable set of dates that always count as Success and
// cannot be edited. The zero value is an empty set.
type LockSet struct {
	dates map[Date]struct{}
}

// NewLockSet builds a LockSet from dates. Invalid dates are dropped.
func NewLockSet(dates ...Date) LockSet {
	set := make(map[Date]struct{}, len(dates))
	for _, d := range dates {
		if d.IsValid() {
			set[d] = struct{}{}
		}
	}
	return LockSet{dates: set}
}

// ParseLockSet builds a LockSet from date expressions understood by ParseDate.
func ParseLockSet(values []string) (LockSet, error) {
	dates := make([]Date, 0, len(values))
	for _, v := range values {
		d, err := ParseDate(v)
		if err != nil {
			return LockSet{}, fmt.Errorf("lock date: %w", err)
		}
		dates = append(dates, d)
	}
	return NewLockSet(dates...), nil
}

// Contains reports whether d is locked.
func (l LockSet) Contains(d Date) bool {
	_, ok := l.dates[d]
	return ok
}

func (l LockSet) Len() int {
	return len(l.dates)
}

// Dates returns the locked dates in ascending order.
func (l LockSet) Dates() []Date {
	out := make([]Date, 0, len(l.dates))
	for d := range l.dates {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// IsLocked reports whether date is a member of locks.
func IsLocked(date Date, locks LockSet) bool {
	return locks.Contains(date)
}
