package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-builder/internal/extraction"
	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// handleExtract runs resume extraction and applies the result to the
// session. The generation token is captured before the upstream call so a
// session that changed in the meantime discards the result instead of
// clobbering user edits.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	id, entry, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req struct {
		ResumeText string `json:"resume_text"`
		HTML       string `json:"html"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ResumeText == "" && req.HTML == "" {
		err := &ErrValidation{Field: "resume_text", Message: "resume_text or html is required"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	entry.mu.Lock()
	generation := entry.session.Generation()
	entry.mu.Unlock()

	// The upstream call runs without the session lock held; navigation and
	// edits stay responsive during extraction.
	text := req.ResumeText
	if text == "" {
		stripped, err := extraction.StripHTML(req.HTML)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		text = stripped
	}

	doc, err := s.extractor.Extract(r.Context(), text)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.session.ApplyExtraction(doc, generation); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.notifier.ExtractionApplied(id)
	s.jsonResponse(w, http.StatusOK, s.stateOf(id, entry.session))
}

// handleGenerateSummary requests an AI summary through the credit gateway.
// When the wizard is on the summary step the result is applied directly;
// otherwise it is only returned, for the client to apply later.
func (s *Server) handleGenerateSummary(w http.ResponseWriter, r *http.Request) {
	id, entry, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	entry.mu.Lock()
	doc := entry.session.Document()
	generation := entry.session.Generation()
	entry.mu.Unlock()

	var summary string
	err := s.gateway.Do(r.Context(), func(ctx context.Context) error {
		var genErr error
		summary, genErr = s.generator.Summary(ctx, doc)
		return genErr
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	// A document that changed identity mid-flight (e.g. a snapshot restore)
	// keeps its own summary; the result is still returned for the client.
	applied := false
	if entry.session.Generation() == generation && entry.session.CurrentStep().ID == wizard.StepSummary {
		raw, _ := json.Marshal(summary)
		if applyErr := entry.session.ApplySection(sections.Summary, raw); applyErr == nil {
			applied = true
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"summary": summary,
		"applied": applied,
		"state":   s.stateOf(id, entry.session),
	})
}
