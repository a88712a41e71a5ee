package wizard

import "fmt"

// OutOfRangeError indicates a jump to a step index outside the sequence.
// The session is left unchanged.
type OutOfRangeError struct {
	Index     int
	StepCount int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("step index %d out of range [0, %d)", e.Index, e.StepCount)
}

// StaleResultError indicates an async result arrived for a document that has
// since changed identity or a step the user has already left. The result is
// discarded rather than applied.
type StaleResultError struct {
	Reason string
}

func (e *StaleResultError) Error() string {
	return "stale result discarded: " + e.Reason
}

// StepSectionError indicates a section edit addressed to a step that does
// not own that section.
type StepSectionError struct {
	Step    StepID
	Section string
}

func (e *StepSectionError) Error() string {
	return fmt.Sprintf("step %s does not own section %s", e.Step, e.Section)
}
