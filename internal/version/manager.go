// Package version creates, lists, and restores named snapshots of a resume
// document, backed by an external snapshot store.
package version

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/normalize"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultName labels snapshots saved without a user-supplied name
const DefaultName = "Manual Save"

// Store is the narrow contract to the external snapshot store
type Store interface {
	Put(ctx context.Context, ownerID uuid.UUID, snapshot *types.VersionSnapshot) error
	Get(ctx context.Context, ownerID uuid.UUID, versionID string) (*types.VersionSnapshot, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]types.VersionSummary, error)
}

// Manager coordinates snapshot creation, listing, and restore. Store
// failures surface as recoverable errors and never touch the live document.
type Manager struct {
	store Store
	now   func() time.Time
}

// NewManager creates a snapshot manager over the given store
func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// Create deep-copies the document into a new immutable snapshot, assigns a
// creation timestamp and version ID, and persists it. Later mutation of the
// live document never alters the returned snapshot.
func (m *Manager) Create(ctx context.Context, ownerID uuid.UUID, doc *types.Document, name string) (*types.VersionSnapshot, error) {
	if name == "" {
		name = DefaultName
	}

	snapshot := &types.VersionSnapshot{
		VersionID:   uuid.New().String(),
		VersionName: name,
		CreatedAt:   m.now().UTC(),
		Document:    doc.Clone(),
	}

	if err := m.store.Put(ctx, ownerID, snapshot); err != nil {
		return nil, &StoreError{Op: "create snapshot", Cause: err}
	}
	return snapshot, nil
}

// List returns snapshot summaries for an owner, newest first, so the most
// recent save is always the first user-visible option.
func (m *Manager) List(ctx context.Context, ownerID uuid.UUID) ([]types.VersionSummary, error) {
	summaries, err := m.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, &StoreError{Op: "list snapshots", Cause: err}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

// Restore fetches the full snapshot body and returns it through the
// normalizer, so restored documents meet the same shape contract as freshly
// created ones. The result is always a fresh copy, never a reference to the
// stored snapshot.
func (m *Manager) Restore(ctx context.Context, ownerID uuid.UUID, versionID string) (types.Document, error) {
	snapshot, err := m.store.Get(ctx, ownerID, versionID)
	if err != nil {
		return types.Document{}, &StoreError{Op: "restore snapshot", Cause: err}
	}
	if snapshot == nil {
		return types.Document{}, &NotFoundError{VersionID: versionID}
	}
	return normalize.Document(snapshot.Document.Clone()), nil
}
