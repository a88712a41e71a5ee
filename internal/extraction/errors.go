package extraction

import "fmt"

// Error represents a failure while extracting resume content.
type Error struct {
	Source  string // "http", "gemini", "html"
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error (%s): %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error (%s): %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
