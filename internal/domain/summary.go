package domain

// Summary accumulates the outcomes of one batch run.
type Summary struct {
	Destination        string
	DisplayDestination string
	Copied             int
	Skipped            int
	Cancelled          bool
}

// Add folds one outcome into the summary and returns the updated copy.
func (s Summary) Add(outcome Outcome) Summary {
	switch outcome {
	case OutcomeSuccess:
		s.Copied++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeCancelled:
		s.Cancelled = true
	}
	return s
}

// Total counts the items the batch got through, copied or skipped.
func (s Summary) Total() int {
	return s.Copied + s.Skipped
}
