package calendar

import "time"

// Default range and lock dates of the tracker.
var (
	DefaultStart = Date{Year: 2025, Month: time.March, Day: 11}
	DefaultEnd   = Date{Year: 2025, Month: time.June, Day: 26}
)

// DefaultLocks returns the default lock dates.
func DefaultLocks() LockSet {
	return NewLockSet(
		Date{Year: 2025, Month: time.April, Day: 15},
		Date{Year: 2025, Month: time.June, Day: 20},
	)
}

// Engine binds a date range, lock set and week mode together. It holds no
// marks; callers own their Marks and pass it in.
type Engine struct {
	start Date
	end   Date
	locks LockSet
	mode  WeekMode
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeekMode sets how rows break. The default is WeekRolling.
func WithWeekMode(mode WeekMode) Option {
	return func(e *Engine) { e.mode = mode }
}

// NewEngine creates an engine over [start, end] inclusive.
func NewEngine(start, end Date, locks LockSet, opts ...Option) *Engine {
	e := &Engine{start: start, end: end, locks: locks}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DefaultEngine returns a rolling-mode engine over the default range and lock
// dates.
func DefaultEngine() *Engine {
	return NewEngine(DefaultStart, DefaultEnd, DefaultLocks())
}

func (e *Engine) Start() Date        { return e.start }
func (e *Engine) End() Date          { return e.end }
func (e *Engine) Locks() LockSet     { return e.locks }
func (e *Engine) WeekMode() WeekMode { return e.mode }

// Contains reports whether d is a weekday inside the engine's range.
func (e *Engine) Contains(d Date) bool {
	if !d.IsValid() || d.IsWeekend() {
		return false
	}
	return !d.Before(e.start) && !d.After(e.end)
}

// Generate lays out the engine's range. The result depends only on the
// range and week mode.
func (e *Engine) Generate() []Month {
	return Generate(e.start, e.end, e.mode)
}

func (e *Engine) IsLocked(d Date) bool {
	return e.locks.Contains(d)
}

// Effective returns the mark a day displays: Success when locked, the stored
// mark otherwise.
func (e *Engine) Effective(store Marks, d Date) Mark {
	return store.Effective(d, e.locks)
}

// Toggle applies a choice for d. Dates outside the calendar are ignored.
func (e *Engine) Toggle(store Marks, d Date, requested Mark) Marks {
	if !e.Contains(d) {
		return store
	}
	return store.Toggle(d, requested, e.locks)
}

func (e *Engine) Rollup(w Week, store Marks) Symbol {
	return w.Rollup(store, e.locks)
}
