package calendar

// Mark is the user's choice for a single day.
type Mark int

const (
	Unset Mark = iota
	Success
	Failure
)

func (m Mark) String() string {
	switch m {
	case Success:
		return "✓"
	case Failure:
		return "✗"
	}
	return ""
}

// Symbol is the weekly rollup shown next to a week row.
type Symbol int

const (
	SymbolNone Symbol = iota
	// SymbolSuccess rewards a full five-day week of successes.
	SymbolSuccess
	SymbolFailure
)

func (s Symbol) String() string {
	switch s {
	case SymbolSuccess:
		return "$"
	case SymbolFailure:
		return "✗"
	}
	return ""
}
