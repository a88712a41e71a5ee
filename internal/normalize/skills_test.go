package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestSkills_LegacyShapeEquivalence(t *testing.T) {
	got := Skills(map[string]any{
		"technical": []any{"Go"},
		"soft":      []any{"Leadership"},
	})

	assert.Equal(t, []types.SkillCategory{
		{Category: "Technical", Items: []string{"Go"}},
		{Category: "Soft Skills", Items: []string{"Leadership"}},
	}, got)
}

func TestSkills_LegacyShapeOmitsEmptyLists(t *testing.T) {
	got := Skills(map[string]any{
		"technical": []any{"Go", "SQL"},
		"soft":      []any{},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Technical", got[0].Category)

	got = Skills(map[string]any{"soft": []any{"Communication"}})
	require.Len(t, got, 1)
	assert.Equal(t, "Soft Skills", got[0].Category)
}

func TestSkills_CategorizedShapePassesThrough(t *testing.T) {
	got := Skills([]any{
		map[string]any{"category": "Backend", "items": []any{"Go", "Postgres"}},
		map[string]any{"category": "Frontend", "items": []any{"React"}},
	})

	assert.Equal(t, []types.SkillCategory{
		{Category: "Backend", Items: []string{"Go", "Postgres"}},
		{Category: "Frontend", Items: []string{"React"}},
	}, got)
}

func TestSkills_CategorizedShapeDropsEmptyCategories(t *testing.T) {
	got := Skills([]any{
		map[string]any{"category": "Backend", "items": []any{"Go"}},
		map[string]any{"category": "Empty", "items": []any{}},
		map[string]any{"category": "", "items": []any{"Orphaned"}},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Backend", got[0].Category)
}

func TestSkills_UnrecognizedShapeDegradesToEmpty(t *testing.T) {
	assert.Empty(t, Skills("Go, Python"))
	assert.Empty(t, Skills(nil))
	assert.Empty(t, Skills(42))
}

func TestCleanCategories_MergesCaseInsensitiveDuplicates(t *testing.T) {
	got := CleanCategories([]types.SkillCategory{
		{Category: "Technical", Items: []string{"Go"}},
		{Category: "technical", Items: []string{"Python"}},
		{Category: "Soft Skills", Items: []string{"Leadership"}},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "Technical", got[0].Category)
	assert.Equal(t, []string{"Go", "Python"}, got[0].Items)
}

func TestCleanCategories_Idempotent(t *testing.T) {
	input := []types.SkillCategory{
		{Category: " Backend ", Items: []string{"Go", " SQL "}},
		{Category: "backend", Items: []string{"Redis"}},
	}

	once := CleanCategories(input)
	twice := CleanCategories(once)
	assert.Equal(t, once, twice)
}

func TestContactIssues_ImplausibleEmail(t *testing.T) {
	issues := ContactIssues(types.Contact{Email: "not-an-email"})
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "not-an-email")

	assert.Empty(t, ContactIssues(types.Contact{Email: "ada@example.com"}))
	assert.Empty(t, ContactIssues(types.Contact{}), "absent email is handled by completeness rules, not plausibility")
}

func TestMap_ImplausibleEmailDegradesToEmpty(t *testing.T) {
	doc := Map(map[string]any{
		"contact": map[string]any{"name": "Ada Lovelace", "email": "not-an-email"},
	})
	assert.Equal(t, "Ada Lovelace", doc.Contact.Name, "one malformed field never poisons the rest")
	assert.Equal(t, "", doc.Contact.Email)

	kept := Map(map[string]any{
		"contact": map[string]any{"email": "ada@example.com"},
	})
	assert.Equal(t, "ada@example.com", kept.Contact.Email)
}

func TestDocument_ImplausibleEmailDegradesToEmpty(t *testing.T) {
	doc := Document(types.Document{Contact: types.Contact{Email: "not-an-email"}})
	assert.Equal(t, "", doc.Contact.Email)
}
