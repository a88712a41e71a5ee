package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// UnknownSectionError indicates a section ID outside the document schema
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section: %s", e.Section)
}

// Section replaces one section of the document wholesale with normalized
// data from raw. The sub-form owns the full shape of its section; the
// document trusts it verbatim after it passes through the per-section rule
// here. Malformed raw data degrades to the section's default; only an
// unknown section ID is an error.
func Section(doc *types.Document, section string, raw json.RawMessage) error {
	var value any
	_ = json.Unmarshal(raw, &value) // malformed input coerces to defaults below

	switch section {
	case "contact":
		m, _ := mapValue(value)
		doc.Contact = contactFrom(m)
	case "summary":
		doc.Summary = stringValue(value)
	case "experience":
		doc.Experience = experienceEntries(value)
	case "education":
		doc.Education = educationEntries(value)
	case "projects":
		doc.Projects = projectEntries(value)
	case "certifications":
		doc.Certifications = certificationEntries(value)
	case "languages":
		doc.Languages = languageEntries(value)
	case "achievements":
		doc.Achievements = achievementEntries(value)
	case "skills":
		doc.Skills = Skills(value)
	default:
		return &UnknownSectionError{Section: section}
	}
	return nil
}
