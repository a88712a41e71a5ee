package version

import "fmt"

// StoreError represents a snapshot store failure. It is recoverable: the
// caller's live document is never rolled back or discarded because of one.
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("snapshot store: failed to %s: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// NotFoundError indicates no snapshot exists for the requested version ID
type NotFoundError struct {
	VersionID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("snapshot not found: %s", e.VersionID)
}
