package calendar

import "sort"

// Marks maps dates to the user's marks. Absence means Unset; an explicit
// Unset entry is never stored. A Marks value is never modified in place:
// Toggle returns a new store. The zero value is an empty store.
type Marks struct {
	m map[Date]Mark
}

// Get returns the stored mark for d, or Unset.
func (s Marks) Get(d Date) Mark {
	return s.m[d]
}

func (s Marks) Len() int {
	return len(s.m)
}

// Dates returns the marked dates in ascending order.
func (s Marks) Dates() []Date {
	out := make([]Date, 0, len(s.m))
	for d := range s.m {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Effective returns Success for locked dates and the stored mark otherwise.
func (s Marks) Effective(d Date, locks LockSet) Mark {
	if locks.Contains(d) {
		return Success
	}
	return s.Get(d)
}

// Toggle applies a user's choice for d:
//   - locked, invalid dates or a requested mark other than Success/Failure
//     leave the store unchanged;
//   - requesting the mark already stored clears it;
//   - anything else stores the requested mark.
//
// The receiver is not modified.
func (s Marks) Toggle(d Date, requested Mark, locks LockSet) Marks {
	if !d.IsValid() || locks.Contains(d) {
		return s
	}
	if requested != Success && requested != Failure {
		return s
	}

	next := s.clone()
	if next.m[d] == requested {
		delete(next.m, d)
	} else {
		next.m[d] = requested
	}
	return next
}

func (s Marks) clone() Marks {
	m := make(map[Date]Mark, len(s.m)+1)
	for d, mark := range s.m {
		m[d] = mark
	}
	return Marks{m: m}
}

// ToggleMark is the functional form of Marks.Toggle.
func ToggleMark(store Marks, date Date, requested Mark, locks LockSet) Marks {
	return store.Toggle(date, requested, locks)
}
