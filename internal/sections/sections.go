// Package sections defines the resume section registry and the completeness
// rules that gate document finalization.
package sections

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// ID identifies a resume section
type ID string

// Section identifiers, in display order
const (
	Contact        ID = "contact"
	Summary        ID = "summary"
	Experience     ID = "experience"
	Education      ID = "education"
	Skills         ID = "skills"
	Projects       ID = "projects"
	Certifications ID = "certifications"
	Languages      ID = "languages"
	Achievements   ID = "achievements"
)

// SummaryMinChars is the character threshold below which a summary is
// categorically unhelpful, regardless of word boundaries. The strength
// scorer uses the same threshold so completeness and scoring never
// disagree about the summary.
const SummaryMinChars = 50

// Definition holds static metadata for a section
type Definition struct {
	ID       ID
	Title    string
	Required bool
}

// Registry lists all sections in display order. Required sections gate
// finalization; optional sections never block it.
var Registry = []Definition{
	{ID: Contact, Title: "Contact", Required: true},
	{ID: Summary, Title: "Summary", Required: false},
	{ID: Experience, Title: "Experience", Required: true},
	{ID: Education, Title: "Education", Required: true},
	{ID: Skills, Title: "Skills", Required: true},
	{ID: Projects, Title: "Projects", Required: false},
	{ID: Certifications, Title: "Certifications", Required: false},
	{ID: Languages, Title: "Languages", Required: false},
	{ID: Achievements, Title: "Achievements", Required: false},
}

// Lookup returns the definition for a section ID
func Lookup(id ID) (Definition, bool) {
	for _, def := range Registry {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

// IsComplete reports whether a section is complete for the given document.
// Pure and deterministic; unknown sections are never complete.
func IsComplete(doc *types.Document, id ID) bool {
	switch id {
	case Contact:
		return doc.Contact.Name != "" && doc.Contact.Email != ""
	case Summary:
		return len(doc.Summary) > SummaryMinChars
	case Experience:
		return len(doc.Experience) > 0
	case Education:
		return len(doc.Education) > 0
	case Skills:
		return doc.SkillItemCount() > 0
	case Projects:
		return len(doc.Projects) > 0
	case Certifications:
		return len(doc.Certifications) > 0
	case Languages:
		return len(doc.Languages) > 0
	case Achievements:
		return len(doc.Achievements) > 0
	default:
		return false
	}
}

// MissingRequired returns the required sections that are incomplete, in
// registry order.
func MissingRequired(doc *types.Document) []Definition {
	var missing []Definition
	for _, def := range Registry {
		if def.Required && !IsComplete(doc, def.ID) {
			missing = append(missing, def)
		}
	}
	return missing
}

// ReadyToFinalize reports whether every required section is complete. This is
// the sole gating condition for hand-off to the document creation service.
func ReadyToFinalize(doc *types.Document) bool {
	return len(MissingRequired(doc)) == 0
}

// IncompleteError names the required sections still missing when finalization
// was attempted. It is a checked result surfaced to the user, not a fault.
type IncompleteError struct {
	Missing []Definition
}

func (e *IncompleteError) Error() string {
	titles := make([]string, 0, len(e.Missing))
	for _, def := range e.Missing {
		titles = append(titles, def.Title)
	}
	return "resume is missing required sections: " + strings.Join(titles, ", ")
}
