package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/types"
)

func strongDocument() types.Document {
	return types.Document{
		Contact: types.Contact{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "+1-555-0100"},
		Summary: strings.Repeat("Experienced engineer. ", 4),
		Experience: []types.ExperienceEntry{
			{ID: "exp-0-1", Company: "Acme"},
			{ID: "exp-1-1", Company: "Globex"},
		},
		Education: []types.EducationEntry{{ID: "edu-0-1", Institution: "MIT"}},
		Projects:  []types.ProjectEntry{{ID: "proj-0-1", Name: "Widget"}},
		Languages: []types.LanguageEntry{{ID: "lang-0-1", Name: "English"}},
		Skills: []types.SkillCategory{
			{Category: "Technical", Items: []string{"Go", "Python", "SQL", "Docker"}},
			{Category: "Soft Skills", Items: []string{"Leadership"}},
		},
	}
}

func TestScore_EmptyDocumentIsZero(t *testing.T) {
	doc := types.Document{}
	result := Score(&doc)

	assert.Equal(t, 0, result.Value)
	assert.NotEmpty(t, result.Suggestions)
	assert.Len(t, result.Suggestions, 7, "every unmet criterion contributes a suggestion")
}

func TestScore_StrongDocumentIsHundred(t *testing.T) {
	doc := strongDocument()
	result := Score(&doc)

	assert.Equal(t, 100, result.Value)
	assert.Empty(t, result.Suggestions)
}

func TestScore_SingleExperiencePartialCredit(t *testing.T) {
	doc := strongDocument()
	doc.Experience = doc.Experience[:1]

	result := Score(&doc)
	assert.Equal(t, 90, result.Value, "1 entry earns 15 of the 25 experience points")
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, "Add one more work experience entry", result.Suggestions[0])
}

func TestScore_SkillsThreshold(t *testing.T) {
	doc := strongDocument()
	doc.Skills = []types.SkillCategory{{Category: "Technical", Items: []string{"Go", "SQL", "Docker", "K8s"}}}

	result := Score(&doc)
	assert.Equal(t, 85, result.Value, "4 skill items miss the 5-item threshold")
	assert.Contains(t, result.Suggestions, "List at least 5 skills")
}

func TestScore_ExtrasNotAdditive(t *testing.T) {
	doc := strongDocument()
	doc.Languages = nil
	doc.Certifications = []types.CertificationEntry{{ID: "cert-0-1", Name: "CKA"}}
	withOne := Score(&doc)

	doc.Languages = []types.LanguageEntry{{ID: "lang-0-1", Name: "English"}}
	doc.Achievements = []types.AchievementEntry{{ID: "ach-0-1", Title: "Award"}}
	withAllThree := Score(&doc)

	assert.Equal(t, withOne.Value, withAllThree.Value, "extras max out with any one of the three")
}

func TestScore_SummaryThresholdSharedWithCompleteness(t *testing.T) {
	doc := strongDocument()

	doc.Summary = strings.Repeat("x", sections.SummaryMinChars)
	assert.Equal(t, 85, Score(&doc).Value)
	assert.False(t, sections.IsComplete(&doc, sections.Summary))

	doc.Summary += "x"
	assert.Equal(t, 100, Score(&doc).Value)
	assert.True(t, sections.IsComplete(&doc, sections.Summary))
}

func TestScore_SuggestionsFollowRubricOrder(t *testing.T) {
	doc := strongDocument()
	doc.Contact.Phone = ""
	doc.Summary = "too short"
	doc.Projects = nil

	result := Score(&doc)
	require.Len(t, result.Suggestions, 3)
	assert.Contains(t, result.Suggestions[0], "contact")
	assert.Contains(t, result.Suggestions[1], "summary")
	assert.Contains(t, result.Suggestions[2], "project")
}

func TestScore_Deterministic(t *testing.T) {
	doc := strongDocument()
	doc.Education = nil

	first := Score(&doc)
	second := Score(&doc)
	assert.Equal(t, first, second)
}

func TestTopSuggestions(t *testing.T) {
	doc := types.Document{}
	result := Score(&doc)

	top := TopSuggestions(result, 3)
	require.Len(t, top, 3)
	assert.Equal(t, result.Suggestions[:3], top)

	assert.Len(t, TopSuggestions(result, 100), len(result.Suggestions))
}
