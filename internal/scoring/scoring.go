// Package scoring computes the 0-100 resume strength score and ranked
// improvement suggestions.
package scoring

import (
	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/types"
)

// Rubric weights. They sum to 100 and front-load the fields that most affect
// downstream document quality.
const (
	contactPoints           = 15
	summaryPoints           = 15
	experienceFullPoints    = 25
	experiencePartialPoints = 15
	skillsPoints            = 15
	educationPoints         = 10
	projectsPoints          = 10
	extrasPoints            = 10

	skillsMinItems = 5
)

// Result holds the strength score and ordered improvement suggestions.
// Suggestions follow rubric order so the highest-leverage gaps surface first;
// callers are expected to show at most the first few.
type Result struct {
	Value       int      `json:"value"`
	Suggestions []string `json:"suggestions"`
}

// Score evaluates the document against the weighted rubric. Pure and
// deterministic: the same document always yields the same result.
func Score(doc *types.Document) Result {
	result := Result{Suggestions: []string{}}

	if doc.Contact.Name != "" && doc.Contact.Email != "" && doc.Contact.Phone != "" {
		result.Value += contactPoints
	} else {
		result.Suggestions = append(result.Suggestions, "Complete your contact details with name, email, and phone")
	}

	if len(doc.Summary) > sections.SummaryMinChars {
		result.Value += summaryPoints
	} else {
		result.Suggestions = append(result.Suggestions, "Write a professional summary of at least a few sentences")
	}

	switch {
	case len(doc.Experience) >= 2:
		result.Value += experienceFullPoints
	case len(doc.Experience) == 1:
		result.Value += experiencePartialPoints
		result.Suggestions = append(result.Suggestions, "Add one more work experience entry")
	default:
		result.Suggestions = append(result.Suggestions, "Add your work experience")
	}

	if doc.SkillItemCount() >= skillsMinItems {
		result.Value += skillsPoints
	} else {
		result.Suggestions = append(result.Suggestions, "List at least 5 skills")
	}

	if len(doc.Education) >= 1 {
		result.Value += educationPoints
	} else {
		result.Suggestions = append(result.Suggestions, "Add your education background")
	}

	if len(doc.Projects) >= 1 {
		result.Value += projectsPoints
	} else {
		result.Suggestions = append(result.Suggestions, "Showcase at least one project")
	}

	// Extras score is not additive: any one of the three maxes the points.
	if len(doc.Certifications) > 0 || len(doc.Languages) > 0 || len(doc.Achievements) > 0 {
		result.Value += extrasPoints
	} else {
		result.Suggestions = append(result.Suggestions, "Add certifications, languages, or achievements to stand out")
	}

	return result
}

// TopSuggestions returns at most n suggestions, preserving rubric order
func TopSuggestions(result Result, n int) []string {
	if n >= len(result.Suggestions) {
		return result.Suggestions
	}
	return result.Suggestions[:n]
}
