package wizard

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-builder/internal/normalize"
	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/types"
)

// Creator hands a finalized document to the external creation service and
// returns an opaque document identifier.
type Creator interface {
	CreateDocument(ctx context.Context, doc *types.Document) (string, error)
}

// Session is one live wizard run: current step position, transition
// direction, the document being edited, and a generation counter guarding
// against stale async results. Sessions are not safe for concurrent use;
// only one step is active at a time, and callers serialize access.
type Session struct {
	current    int
	direction  int
	doc        types.Document
	generation uint64
}

// NewSession starts a wizard at step 0 with an empty document
func NewSession() *Session {
	return &Session{doc: normalize.Defaults()}
}

// NewSessionFromDocument starts a wizard at step 0 around an existing
// document (e.g. an extraction result), normalizing it first.
func NewSessionFromDocument(doc types.Document) *Session {
	return &Session{doc: normalize.Document(doc.Clone())}
}

// Document returns a copy of the live document. Mutation happens only
// through ApplySection, ApplyExtraction, and Restore.
func (s *Session) Document() types.Document {
	return s.doc.Clone()
}

// CurrentStep returns the active step's metadata
func (s *Session) CurrentStep() Step {
	return Steps[s.current]
}

// StepIndex returns the 0-based index of the active step
func (s *Session) StepIndex() int {
	return s.current
}

// Direction returns the last transition direction (+1, -1, or 0). It exists
// for presentation only and has no bearing on document state.
func (s *Session) Direction() int {
	return s.direction
}

// Generation returns the document identity token. Callers starting an async
// operation capture it and pass it back on commit; a mismatch means the
// document has been replaced in the meantime.
func (s *Session) Generation() uint64 {
	return s.generation
}

// Next advances one step. At the terminal step it is a no-op: the only
// forward action from review is the finalize hand-off.
func (s *Session) Next() {
	if s.current >= len(Steps)-1 {
		return
	}
	s.current++
	s.direction = 1
}

// Previous retreats one step; a no-op at step 0
func (s *Session) Previous() {
	if s.current <= 0 {
		return
	}
	s.current--
	s.direction = -1
}

// JumpTo transitions directly to any valid step index. The wizard does not
// enforce linear completion, so intervening steps may be incomplete; only
// the finalize gate checks required sections. An out-of-range index is
// rejected without mutating the session.
func (s *Session) JumpTo(index int) error {
	if index < 0 || index >= len(Steps) {
		return &OutOfRangeError{Index: index, StepCount: len(Steps)}
	}
	switch {
	case index > s.current:
		s.direction = 1
	case index < s.current:
		s.direction = -1
	default:
		s.direction = 0
	}
	s.current = index
	return nil
}

// StepPayload returns the subset of the document the active step edits.
// Intake and review carry no section and get the whole document.
func (s *Session) StepPayload() any {
	step := Steps[s.current]
	switch step.Section {
	case sections.Contact:
		return s.doc.Contact
	case sections.Summary:
		return s.doc.Summary
	case sections.Experience:
		return s.doc.Experience
	case sections.Education:
		return s.doc.Education
	case sections.Skills:
		return s.doc.Skills
	case sections.Projects:
		return s.doc.Projects
	case sections.Certifications:
		return s.doc.Certifications
	case sections.Languages:
		return s.doc.Languages
	case sections.Achievements:
		return s.doc.Achievements
	default:
		return s.Document()
	}
}

// ApplySection replaces one section of the document wholesale with the
// sub-form's data, routed through the normalizer's per-section rule. Only
// the step currently owning the section may mutate it.
func (s *Session) ApplySection(section sections.ID, raw json.RawMessage) error {
	step := Steps[s.current]
	if step.Section != section {
		return &StepSectionError{Step: step.ID, Section: string(section)}
	}
	return normalize.Section(&s.doc, string(section), raw)
}

// ApplyExtraction commits an extraction result captured against the given
// generation token. The result is discarded when the document has changed
// identity since the request started, or when the user has already advanced
// past the intake step.
func (s *Session) ApplyExtraction(doc types.Document, generation uint64) error {
	if generation != s.generation {
		return &StaleResultError{Reason: "document changed since extraction started"}
	}
	if Steps[s.current].ID != StepIntake {
		return &StaleResultError{Reason: "wizard advanced past intake"}
	}
	s.doc = normalize.Document(doc.Clone())
	s.generation++
	return nil
}

// Restore replaces the live document with a snapshot body. The restored
// document is normalized and copied, never shared with the stored snapshot,
// and the generation counter advances so in-flight async results are
// discarded rather than applied to the restored state.
func (s *Session) Restore(doc types.Document) {
	s.doc = normalize.Document(doc.Clone())
	s.generation++
	s.direction = 0
}

// Finalize checks the required-section gate and hands the document to the
// creation service. An incomplete document yields a checked IncompleteError
// naming the missing sections; the live document is never modified.
func (s *Session) Finalize(ctx context.Context, creator Creator) (string, error) {
	if missing := sections.MissingRequired(&s.doc); len(missing) > 0 {
		return "", &sections.IncompleteError{Missing: missing}
	}
	doc := s.doc.Clone()
	return creator.CreateDocument(ctx, &doc)
}
