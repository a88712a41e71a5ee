package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/types"
)

// handleCreateVersion snapshots the session's live document
func (s *Server) handleCreateVersion(w http.ResponseWriter, r *http.Request) {
	id, entry, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if body, err := io.ReadAll(r.Body); err == nil && len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	entry.mu.Lock()
	doc := entry.session.Document()
	entry.mu.Unlock()

	snapshot, err := s.versions.Create(r.Context(), s.ownerID, &doc, req.Name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.notifier.SnapshotSaved(id, snapshot.VersionID)
	s.jsonResponse(w, http.StatusCreated, types.VersionSummary{
		VersionID:   snapshot.VersionID,
		VersionName: snapshot.VersionName,
		CreatedAt:   snapshot.CreatedAt,
	})
}

// handleListVersions returns snapshot summaries, newest first
func (s *Server) handleListVersions(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := s.lookupSession(w, r); !ok {
		return
	}

	summaries, err := s.versions.List(r.Context(), s.ownerID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if summaries == nil {
		summaries = []types.VersionSummary{}
	}
	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleRestoreVersion replaces the session's live document with a snapshot
func (s *Server) handleRestoreVersion(w http.ResponseWriter, r *http.Request) {
	id, entry, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	doc, err := s.versions.Restore(r.Context(), s.ownerID, r.PathValue("version_id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.session.Restore(doc)
	s.jsonResponse(w, http.StatusOK, s.stateOf(id, entry.session))
}

// handleSidebar aggregates the saved-version list and the credit balance in
// one response. The two upstream calls run concurrently; a balance failure
// degrades to a null balance rather than failing the sidebar.
func (s *Server) handleSidebar(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := s.lookupSession(w, r); !ok {
		return
	}

	var (
		summaries []types.VersionSummary
		balance   *float64
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		summaries, err = s.versions.List(ctx, s.ownerID)
		return err
	})
	g.Go(func() error {
		value, err := s.balance.Balance(ctx, s.ownerID.String())
		if err != nil {
			// Balance is display-only; the sidebar still renders without it
			log.Printf("balance lookup failed: %v", err)
			return nil
		}
		balance = &value
		return nil
	})

	if err := g.Wait(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if summaries == nil {
		summaries = []types.VersionSummary{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"versions": summaries,
		"balance":  balance,
	})
}
