// Package normalize converts heterogeneous resume payloads (AI extraction
// output, legacy storage shapes, snapshot restores, per-section edits) into
// the canonical Document. Only this boundary deals with partial or malformed
// input; everything downstream operates on a fully-populated document.
package normalize

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// now is stubbed in tests for deterministic entry IDs
var now = time.Now

// Defaults returns an empty canonical document: every scalar is an empty
// string, every sequence an empty non-nil slice.
func Defaults() types.Document {
	return types.Document{
		Experience:     []types.ExperienceEntry{},
		Education:      []types.EducationEntry{},
		Projects:       []types.ProjectEntry{},
		Certifications: []types.CertificationEntry{},
		Languages:      []types.LanguageEntry{},
		Achievements:   []types.AchievementEntry{},
		Skills:         []types.SkillCategory{},
	}
}

// Payload normalizes a raw JSON payload into a canonical document. Malformed
// JSON and malformed fields degrade to defaults; Payload never fails.
func Payload(data []byte) types.Document {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Defaults()
	}
	return Map(raw)
}

// Map normalizes a loosely-typed payload into a canonical document. Each
// field is coerced independently, so one malformed field never poisons the
// rest of the payload.
func Map(raw map[string]any) types.Document {
	doc := Defaults()
	if raw == nil {
		return doc
	}

	if contact, ok := mapValue(raw["contact"]); ok {
		doc.Contact = contactFrom(contact)
	} else {
		// Legacy extraction payloads carried contact fields at the top level
		doc.Contact = contactFrom(raw)
	}

	doc.Summary = stringValue(raw["summary"])
	doc.Experience = experienceEntries(raw["experience"])
	doc.Education = educationEntries(raw["education"])
	doc.Projects = projectEntries(raw["projects"])
	doc.Certifications = certificationEntries(raw["certifications"])
	doc.Languages = languageEntries(raw["languages"])
	doc.Achievements = achievementEntries(raw["achievements"])
	doc.Skills = Skills(raw["skills"])
	doc.Template = stringValue(raw["template"])
	doc.Theme = themeFrom(raw["theme"])

	return doc
}

// Document re-normalizes an already-typed document: non-nil sequences,
// synthesized entry IDs, cleaned skill categories, theme colors without a
// leading '#'. Idempotent, so it is safe to apply on every extraction
// response and every snapshot restore.
func Document(doc types.Document) types.Document {
	if doc.Experience == nil {
		doc.Experience = []types.ExperienceEntry{}
	}
	if doc.Education == nil {
		doc.Education = []types.EducationEntry{}
	}
	if doc.Projects == nil {
		doc.Projects = []types.ProjectEntry{}
	}
	if doc.Certifications == nil {
		doc.Certifications = []types.CertificationEntry{}
	}
	if doc.Languages == nil {
		doc.Languages = []types.LanguageEntry{}
	}
	if doc.Achievements == nil {
		doc.Achievements = []types.AchievementEntry{}
	}

	for i := range doc.Experience {
		if doc.Experience[i].ID == "" {
			doc.Experience[i].ID = newEntryID("exp", i)
		}
	}
	for i := range doc.Education {
		if doc.Education[i].ID == "" {
			doc.Education[i].ID = newEntryID("edu", i)
		}
	}
	for i := range doc.Projects {
		if doc.Projects[i].ID == "" {
			doc.Projects[i].ID = newEntryID("proj", i)
		}
		if doc.Projects[i].Technologies == nil {
			doc.Projects[i].Technologies = []string{}
		}
	}
	for i := range doc.Certifications {
		if doc.Certifications[i].ID == "" {
			doc.Certifications[i].ID = newEntryID("cert", i)
		}
	}
	for i := range doc.Languages {
		if doc.Languages[i].ID == "" {
			doc.Languages[i].ID = newEntryID("lang", i)
		}
	}
	for i := range doc.Achievements {
		if doc.Achievements[i].ID == "" {
			doc.Achievements[i].ID = newEntryID("ach", i)
		}
	}

	doc.Contact.Email = plausibleOrEmpty(doc.Contact.Email)
	doc.Skills = CleanCategories(doc.Skills)
	doc.Theme.PrimaryColor = strings.TrimPrefix(doc.Theme.PrimaryColor, "#")
	doc.Theme.SecondaryColor = strings.TrimPrefix(doc.Theme.SecondaryColor, "#")

	return doc
}
