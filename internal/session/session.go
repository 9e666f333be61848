// Package session holds the state of one tracking session: the marks the
// user has set and which day's options are open. Nothing here outlives the
// process.
package session

import (
	"github.com/sirupsen/logrus"

	"github.com/Haze-32/tjk/internal/calendar"
)

// Session is the state container the presentation layer owns. It is driven
// by one event loop and is not safe for concurrent use.
type Session struct {
	engine *calendar.Engine
	months []calendar.Month
	marks  calendar.Marks

	open    calendar.Date
	hasOpen bool
}

// New starts an empty session over the engine's calendar.
func New(engine *calendar.Engine) *Session {
	return &Session{
		engine: engine,
		months: engine.Generate(),
	}
}

func (s *Session) Engine() *calendar.Engine { return s.engine }

// Months returns the calendar layout. It does not change during a session.
func (s *Session) Months() []calendar.Month { return s.months }

func (s *Session) Marks() calendar.Marks { return s.marks }

// OpenDay returns the day whose options are open, if any.
func (s *Session) OpenDay() (calendar.Date, bool) {
	return s.open, s.hasOpen
}

// Select handles a click on a day box. Locked days and days outside the
// calendar are ignored. Selecting the open day closes its options; any other
// day opens them. It reports whether the open day changed.
func (s *Session) Select(d calendar.Date) bool {
	if !s.engine.Contains(d) || s.engine.IsLocked(d) {
		logrus.WithField("date", d.String()).Debug("ignoring select on locked or out-of-range day")
		return false
	}
	if s.hasOpen && s.open == d {
		s.Close()
		return true
	}
	s.open, s.hasOpen = d, true
	return true
}

// Close hides any open options.
func (s *Session) Close() {
	s.open, s.hasOpen = calendar.Date{}, false
}

// Choose applies a mark choice for d and closes the options. It reports
// whether the marks changed.
func (s *Session) Choose(d calendar.Date, mark calendar.Mark) bool {
	before := s.marks.Get(d)
	s.marks = s.engine.Toggle(s.marks, d, mark)
	s.Close()

	after := s.marks.Get(d)
	logrus.WithFields(logrus.Fields{
		"date":      d.String(),
		"requested": mark.String(),
		"stored":    after.String(),
	}).Debug("mark chosen")
	return before != after
}
