package server

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/normalize"
	"github.com/jonathan/resume-builder/internal/scoring"
	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// sessionEntry pairs a wizard session with the mutex serializing access to
// it. Sessions themselves are not safe for concurrent use.
type sessionEntry struct {
	mu      sync.Mutex
	session *wizard.Session
}

// sessionRegistry holds live wizard sessions by ID
type sessionRegistry struct {
	mu      sync.RWMutex
	entries map[string]*sessionEntry
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{entries: make(map[string]*sessionEntry)}
}

func (r *sessionRegistry) add(session *wizard.Session) string {
	id := uuid.New().String()
	r.mu.Lock()
	r.entries[id] = &sessionEntry{session: session}
	r.mu.Unlock()
	return id
}

func (r *sessionRegistry) get(id string) (*sessionEntry, bool) {
	r.mu.RLock()
	entry, ok := r.entries[id]
	r.mu.RUnlock()
	return entry, ok
}

func (r *sessionRegistry) remove(id string) {
	r.mu.Lock()
	delete(r.entries, id)
	r.mu.Unlock()
}

// sessionState is the wire representation of a session's navigation state
type sessionState struct {
	SessionID  string      `json:"session_id"`
	Step       wizard.Step `json:"step"`
	StepIndex  int         `json:"step_index"`
	StepCount  int         `json:"step_count"`
	Direction  int         `json:"direction"`
	Generation uint64      `json:"generation"`
	Payload    any         `json:"payload"`
}

// lookupSession resolves the {id} path value to a live session entry,
// writing the error response itself when the session does not exist.
func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (string, *sessionEntry, bool) {
	id := r.PathValue("id")
	entry, ok := s.sessions.get(id)
	if !ok {
		err := &ErrSessionNotFound{SessionID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return "", nil, false
	}
	return id, entry, true
}

func (s *Server) stateOf(id string, session *wizard.Session) sessionState {
	return sessionState{
		SessionID:  id,
		Step:       session.CurrentStep(),
		StepIndex:  session.StepIndex(),
		StepCount:  len(wizard.Steps),
		Direction:  session.Direction(),
		Generation: session.Generation(),
		Payload:    session.StepPayload(),
	}
}

// handleCreateSession starts a new wizard session. An optional document in
// the body seeds the session; otherwise it starts empty.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var session *wizard.Session

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if len(body) > 0 {
		var req struct {
			Document json.RawMessage `json:"document"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if len(req.Document) > 0 && string(req.Document) != "null" {
			// The seed goes through the tolerant normalizer so legacy
			// shapes are accepted the same way extraction results are
			session = wizard.NewSessionFromDocument(normalize.Payload(req.Document))
		}
	}
	if session == nil {
		session = wizard.NewSession()
	}

	id := s.sessions.add(session)
	s.jsonResponse(w, http.StatusCreated, s.stateOf(id, session))
}

// handleGetSession returns the session's navigation state and step payload
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, entry, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, s.stateOf(id, entry.session))
}

// handleNext advances the wizard one step
func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	id, entry, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.session.Next()
	s.jsonResponse(w, http.StatusOK, s.stateOf(id, entry.session))
}

// handlePrevious retreats the wizard one step
func (s *Server) handlePrevious(w http.ResponseWriter, r *http.Request) {
	id, entry, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.session.Previous()
	s.jsonResponse(w, http.StatusOK, s.stateOf(id, entry.session))
}

// handleJump moves the wizard directly to a step index
func (s *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	id, entry, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.session.JumpTo(req.Index); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.stateOf(id, entry.session))
}

// handleApplySection replaces one section of the document with the active
// step's sub-form data
func (s *Server) handleApplySection(w http.ResponseWriter, r *http.Request) {
	id, entry, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	section := sections.ID(r.PathValue("section"))

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.session.ApplySection(section, raw); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.stateOf(id, entry.session))
}

// handleGetDocument returns the full live document
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	_, entry, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	entry.mu.Lock()
	doc := entry.session.Document()
	entry.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, doc)
}

// handleScore returns the strength score for the live document
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	_, entry, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	entry.mu.Lock()
	doc := entry.session.Document()
	entry.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, scoring.Score(&doc))
}

// handleCompleteness reports per-section completeness and the finalize gate
func (s *Server) handleCompleteness(w http.ResponseWriter, r *http.Request) {
	_, entry, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	entry.mu.Lock()
	doc := entry.session.Document()
	entry.mu.Unlock()

	type sectionStatus struct {
		ID       sections.ID `json:"id"`
		Title    string      `json:"title"`
		Required bool        `json:"required"`
		Complete bool        `json:"complete"`
	}

	statuses := make([]sectionStatus, 0, len(sections.Registry))
	for _, def := range sections.Registry {
		statuses = append(statuses, sectionStatus{
			ID:       def.ID,
			Title:    def.Title,
			Required: def.Required,
			Complete: sections.IsComplete(&doc, def.ID),
		})
	}

	warnings := normalize.ContactIssues(doc.Contact)
	if warnings == nil {
		warnings = []string{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"sections":          statuses,
		"ready_to_finalize": sections.ReadyToFinalize(&doc),
		"warnings":          warnings,
	})
}

// handleFinalize runs the required-section gate and hands the document to
// the document service. The session ends on success.
func (s *Server) handleFinalize(w http.ResponseWriter, r *http.Request) {
	id, entry, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	documentID, err := entry.session.Finalize(r.Context(), s.creator)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.sessions.remove(id)
	s.notifier.DocumentCreated(id, documentID)
	s.jsonResponse(w, http.StatusCreated, map[string]string{"document_id": documentID})
}
