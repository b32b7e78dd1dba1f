package models

import "fmt"

// Outcome is the verdict of comparing ground truth against claimed results.
type Outcome struct {
	Success  bool
	Mismatch *Mismatch
}

// Mismatch describes the first word whose claimed count diverges from the
// ground truth. Actual is nil when the word is missing from the claimed
// results.
type Mismatch struct {
	Word     string
	Expected int
	Actual   *int
}

// SuccessOutcome is returned when every checked word matches.
func SuccessOutcome() Outcome {
	return Outcome{Success: true}
}

// MismatchOutcome builds a failing outcome. Pass a nil actual for a missing word.
func MismatchOutcome(word string, expected int, actual *int) Outcome {
	return Outcome{Mismatch: &Mismatch{Word: word, Expected: expected, Actual: actual}}
}

// Missing reports whether the word was absent from the claimed results.
func (m *Mismatch) Missing() bool {
	return m.Actual == nil
}

// ActualString renders the claimed count, or "None" when missing.
func (m *Mismatch) ActualString() string {
	if m.Actual == nil {
		return "None"
	}
	return fmt.Sprintf("%d", *m.Actual)
}

// String renders the single verdict line printed to stdout.
func (o Outcome) String() string {
	if o.Success || o.Mismatch == nil {
		return "success"
	}
	m := o.Mismatch
	return fmt.Sprintf("incorrect %s %d is not equivalent to %s %s", m.Word, m.Expected, m.Word, m.ActualString())
}
