package domain

// Outcome is the result of copying a single source entry.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeSkipped
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Decision is the user's answer when a copy target already exists.
type Decision int

const (
	DecisionCancel Decision = iota
	DecisionOverwrite
	DecisionSkip
)

func (d Decision) String() string {
	switch d {
	case DecisionOverwrite:
		return "overwrite"
	case DecisionSkip:
		return "skip"
	default:
		return "cancel"
	}
}
