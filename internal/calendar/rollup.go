package calendar

// ComputeRollup evaluates a week row:
//  1. every day effectively Success and exactly five days -> SymbolSuccess;
//  2. otherwise any day Failure -> SymbolFailure;
//  3. otherwise SymbolNone.
//
// Rows shorter than five days never earn SymbolSuccess.
func ComputeRollup(weekDates []Date, store Marks, locks LockSet) Symbol {
	if len(weekDates) == 0 {
		return SymbolNone
	}

	allSuccess := true
	anyFailure := false
	for _, d := range weekDates {
		switch store.Effective(d, locks) {
		case Success:
		case Failure:
			anyFailure = true
			allSuccess = false
		default:
			allSuccess = false
		}
	}

	if allSuccess && len(weekDates) == DaysPerWeek {
		return SymbolSuccess
	}
	if anyFailure {
		return SymbolFailure
	}
	return SymbolNone
}
