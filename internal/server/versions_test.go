package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestVersions_CreateListRestore(t *testing.T) {
	srv := newTestServer(t, defaultBackends(t))
	id := createSessionWithCompleteDocument(t, srv)

	rec := do(t, srv, http.MethodPost, "/sessions/"+id+"/versions", map[string]string{"name": "Before edits"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[types.VersionSummary](t, rec)
	assert.Equal(t, "Before edits", created.VersionName)
	require.NotEmpty(t, created.VersionID)

	// Overwrite the contact section, then restore the snapshot
	do(t, srv, http.MethodPost, "/sessions/"+id+"/jump", map[string]int{"index": 1})
	rec = do(t, srv, http.MethodPut, "/sessions/"+id+"/sections/contact",
		map[string]string{"name": "Someone Else", "email": "other@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodPost, "/sessions/"+id+"/versions/"+created.VersionID+"/restore", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := decode[map[string]any](t, do(t, srv, http.MethodGet, "/sessions/"+id+"/document", nil))
	contact := doc["contact"].(map[string]any)
	assert.Equal(t, "Dana Smith", contact["name"])

	rec = do(t, srv, http.MethodGet, "/sessions/"+id+"/versions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summaries := decode[[]types.VersionSummary](t, rec)
	assert.Len(t, summaries, 1)
}

func TestVersions_DefaultName(t *testing.T) {
	srv := newTestServer(t, defaultBackends(t))
	id := createSession(t, srv)

	rec := do(t, srv, http.MethodPost, "/sessions/"+id+"/versions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[types.VersionSummary](t, rec)
	assert.Equal(t, "Manual Save", created.VersionName)
}

func TestVersions_RestoreUnknownVersion(t *testing.T) {
	srv := newTestServer(t, defaultBackends(t))
	id := createSession(t, srv)

	rec := do(t, srv, http.MethodPost, "/sessions/"+id+"/versions/nope/restore", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSidebar_AggregatesVersionsAndBalance(t *testing.T) {
	srv := newTestServer(t, defaultBackends(t))
	id := createSession(t, srv)
	do(t, srv, http.MethodPost, "/sessions/"+id+"/versions", map[string]string{"name": "First"})

	rec := do(t, srv, http.MethodGet, "/sessions/"+id+"/sidebar", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	sidebar := decode[map[string]any](t, rec)
	assert.Equal(t, float64(42), sidebar["balance"])
	assert.Len(t, sidebar["versions"], 1)
}

func TestSidebar_BalanceFailureDegrades(t *testing.T) {
	b := defaultBackends(t)
	b.billing.Close()
	srv := newTestServer(t, b)
	id := createSession(t, srv)

	rec := do(t, srv, http.MethodGet, "/sessions/"+id+"/sidebar", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	sidebar := decode[map[string]any](t, rec)
	assert.Nil(t, sidebar["balance"])
}
