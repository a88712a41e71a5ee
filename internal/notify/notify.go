// Package notify announces wizard lifecycle events. The default
// implementations log or discard; richer transports can implement
// Notifier without the wizard knowing.
package notify

import "log"

// Notifier receives wizard lifecycle events.
type Notifier interface {
	// DocumentCreated fires after a finished resume is handed off.
	DocumentCreated(sessionID, documentID string)
	// SnapshotSaved fires after a version snapshot is stored.
	SnapshotSaved(sessionID, versionID string)
	// ExtractionApplied fires when async extraction results land in a session.
	ExtractionApplied(sessionID string)
}

// Nop discards all events.
type Nop struct{}

// DocumentCreated implements Notifier.
func (Nop) DocumentCreated(string, string) {}

// SnapshotSaved implements Notifier.
func (Nop) SnapshotSaved(string, string) {}

// ExtractionApplied implements Notifier.
func (Nop) ExtractionApplied(string) {}

// Logger writes events to the standard logger.
type Logger struct{}

// DocumentCreated implements Notifier.
func (Logger) DocumentCreated(sessionID, documentID string) {
	log.Printf("session %s: document created: %s", sessionID, documentID)
}

// SnapshotSaved implements Notifier.
func (Logger) SnapshotSaved(sessionID, versionID string) {
	log.Printf("session %s: snapshot saved: %s", sessionID, versionID)
}

// ExtractionApplied implements Notifier.
func (Logger) ExtractionApplied(sessionID string) {
	log.Printf("session %s: extraction results applied", sessionID)
}
