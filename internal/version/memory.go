package version

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// MemoryStore is an in-process snapshot store used for development and
// tests. It clones on both write and read so callers can never reach the
// stored bodies.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[uuid.UUID][]types.VersionSnapshot
}

// NewMemoryStore creates an empty in-memory snapshot store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[uuid.UUID][]types.VersionSnapshot)}
}

// Put stores a copy of the snapshot under the owner
func (s *MemoryStore) Put(_ context.Context, ownerID uuid.UUID, snapshot *types.VersionSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *snapshot
	stored.Document = snapshot.Document.Clone()
	s.snapshots[ownerID] = append(s.snapshots[ownerID], stored)
	return nil
}

// Get returns a copy of the snapshot, or nil when absent
func (s *MemoryStore) Get(_ context.Context, ownerID uuid.UUID, versionID string) (*types.VersionSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, snapshot := range s.snapshots[ownerID] {
		if snapshot.VersionID == versionID {
			out := snapshot
			out.Document = snapshot.Document.Clone()
			return &out, nil
		}
	}
	return nil, nil
}

// ListByOwner returns summaries for all of an owner's snapshots in insertion
// order; the manager handles ordering.
func (s *MemoryStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]types.VersionSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.snapshots[ownerID]
	summaries := make([]types.VersionSummary, 0, len(stored))
	for _, snapshot := range stored {
		summaries = append(summaries, types.VersionSummary{
			VersionID:   snapshot.VersionID,
			VersionName: snapshot.VersionName,
			CreatedAt:   snapshot.CreatedAt,
		})
	}
	return summaries, nil
}
