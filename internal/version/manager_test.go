package version

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

type failingStore struct {
	err error
}

func (f *failingStore) Put(context.Context, uuid.UUID, *types.VersionSnapshot) error {
	return f.err
}

func (f *failingStore) Get(context.Context, uuid.UUID, string) (*types.VersionSnapshot, error) {
	return nil, f.err
}

func (f *failingStore) ListByOwner(context.Context, uuid.UUID) ([]types.VersionSummary, error) {
	return nil, f.err
}

func sampleDocument() types.Document {
	return types.Document{
		Contact: types.Contact{Name: "Ada Lovelace", Email: "ada@example.com"},
		Skills:  []types.SkillCategory{{Category: "Technical", Items: []string{"Go"}}},
	}
}

func TestCreate_DefaultsNameAndAssignsIdentity(t *testing.T) {
	mgr := NewManager(NewMemoryStore())
	ownerID := uuid.New()
	doc := sampleDocument()

	snapshot, err := mgr.Create(context.Background(), ownerID, &doc, "")
	require.NoError(t, err)

	assert.Equal(t, DefaultName, snapshot.VersionName)
	assert.NotEmpty(t, snapshot.VersionID)
	assert.False(t, snapshot.CreatedAt.IsZero())
}

func TestCreate_SnapshotIsolation(t *testing.T) {
	store := NewMemoryStore()
	mgr := NewManager(store)
	ownerID := uuid.New()
	doc := sampleDocument()

	snapshot, err := mgr.Create(context.Background(), ownerID, &doc, "before edits")
	require.NoError(t, err)

	// Mutating the live document must not alter the snapshot, neither the
	// returned copy nor the stored body.
	doc.Contact.Name = "Changed"
	doc.Skills[0].Items[0] = "Rust"

	assert.Equal(t, "Ada Lovelace", snapshot.Document.Contact.Name)
	assert.Equal(t, "Go", snapshot.Document.Skills[0].Items[0])

	restored, err := mgr.Restore(context.Background(), ownerID, snapshot.VersionID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", restored.Contact.Name)
	assert.Equal(t, "Go", restored.Skills[0].Items[0])
}

func TestList_NewestFirst(t *testing.T) {
	store := NewMemoryStore()
	mgr := NewManager(store)
	ownerID := uuid.New()
	doc := sampleDocument()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		offset := time.Duration(i) * time.Minute
		mgr.now = func() time.Time { return base.Add(offset) }
		_, err := mgr.Create(context.Background(), ownerID, &doc, name)
		require.NoError(t, err)
	}

	summaries, err := mgr.List(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "third", summaries[0].VersionName)
	assert.Equal(t, "first", summaries[2].VersionName)
}

func TestList_SummariesOnly(t *testing.T) {
	mgr := NewManager(NewMemoryStore())
	ownerID := uuid.New()
	doc := sampleDocument()

	created, err := mgr.Create(context.Background(), ownerID, &doc, "")
	require.NoError(t, err)

	summaries, err := mgr.List(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, created.VersionID, summaries[0].VersionID)
	assert.Equal(t, created.CreatedAt, summaries[0].CreatedAt)
}

func TestRestore_NormalizedFreshCopy(t *testing.T) {
	mgr := NewManager(NewMemoryStore())
	ownerID := uuid.New()

	// A snapshot stored before normalization tightened: nil sequences and a
	// '#'-prefixed theme color.
	doc := types.Document{
		Contact: types.Contact{Name: "Ada", Email: "ada@example.com"},
		Theme:   types.Theme{PrimaryColor: "#1a1a2e"},
	}
	snapshot, err := mgr.Create(context.Background(), ownerID, &doc, "legacy")
	require.NoError(t, err)

	restored, err := mgr.Restore(context.Background(), ownerID, snapshot.VersionID)
	require.NoError(t, err)
	assert.NotNil(t, restored.Experience)
	assert.NotNil(t, restored.Skills)
	assert.Equal(t, "1a1a2e", restored.Theme.PrimaryColor)
}

func TestRestore_NotFound(t *testing.T) {
	mgr := NewManager(NewMemoryStore())

	_, err := mgr.Restore(context.Background(), uuid.New(), "missing-id")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing-id", notFound.VersionID)
}

func TestStoreFailures_RecoverableErrors(t *testing.T) {
	storeErr := errors.New("connection refused")
	mgr := NewManager(&failingStore{err: storeErr})
	ownerID := uuid.New()
	doc := sampleDocument()

	_, err := mgr.Create(context.Background(), ownerID, &doc, "x")
	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.ErrorIs(t, err, storeErr)

	_, err = mgr.List(context.Background(), ownerID)
	require.ErrorAs(t, err, &se)

	_, err = mgr.Restore(context.Background(), ownerID, "any")
	require.ErrorAs(t, err, &se)

	// The caller's document is untouched throughout.
	assert.Equal(t, "Ada Lovelace", doc.Contact.Name)
}
