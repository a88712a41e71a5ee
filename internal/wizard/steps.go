// Package wizard owns the multi-step resume builder session: step
// navigation, per-step document edits, and the finalize hand-off.
package wizard

import "github.com/jonathan/resume-builder/internal/sections"

// StepID identifies a wizard step
type StepID string

// Wizard steps in order. Intake and review bracket the section steps and
// carry no section of their own.
const (
	StepIntake         StepID = "intake"
	StepContact        StepID = "contact"
	StepExperience     StepID = "experience"
	StepEducation      StepID = "education"
	StepSkills         StepID = "skills"
	StepProjects       StepID = "projects"
	StepCertifications StepID = "certifications"
	StepLanguages      StepID = "languages"
	StepAchievements   StepID = "achievements"
	StepSummary        StepID = "summary"
	StepReview         StepID = "review"
)

// Step holds static metadata for one wizard step
type Step struct {
	ID       StepID      `json:"id"`
	Title    string      `json:"title"`
	Section  sections.ID `json:"section,omitempty"`
	Optional bool        `json:"optional"`
}

// Steps is the fixed step sequence, known at construction. The last step
// (review) is terminal: its only forward action is the finalize hand-off.
var Steps = []Step{
	{ID: StepIntake, Title: "Import Resume", Optional: true},
	{ID: StepContact, Title: "Contact", Section: sections.Contact},
	{ID: StepExperience, Title: "Experience", Section: sections.Experience},
	{ID: StepEducation, Title: "Education", Section: sections.Education},
	{ID: StepSkills, Title: "Skills", Section: sections.Skills},
	{ID: StepProjects, Title: "Projects", Section: sections.Projects, Optional: true},
	{ID: StepCertifications, Title: "Certifications", Section: sections.Certifications, Optional: true},
	{ID: StepLanguages, Title: "Languages", Section: sections.Languages, Optional: true},
	{ID: StepAchievements, Title: "Achievements", Section: sections.Achievements, Optional: true},
	{ID: StepSummary, Title: "Summary", Section: sections.Summary, Optional: true},
	{ID: StepReview, Title: "Review", Optional: true},
}

// StepIndex returns the position of a step ID in the sequence, or -1
func StepIndex(id StepID) int {
	for i, step := range Steps {
		if step.ID == id {
			return i
		}
	}
	return -1
}
