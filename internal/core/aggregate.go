package core

// Aggregate reduces entries to a Snapshot in one pass.
//
// Pure function: no I/O, no mutation of the input. An empty or nil input
// yields an all-zero snapshot. Sums use exact decimal arithmetic, so the
// result does not drift across many small transactions and is independent
// of entry order.
func Aggregate(entries []Entry) Snapshot {
	var s Snapshot
	for _, e := range entries {
		switch e.Category {
		case Income:
			s.Income = s.Income.Add(e.Amount)
		case Expense:
			s.Expense = s.Expense.Add(e.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}
