package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestSection_WholesaleReplace(t *testing.T) {
	stubClock(t)

	doc := Defaults()
	doc.Experience = []types.ExperienceEntry{{ID: "exp-old", Company: "Old Corp"}}

	raw := json.RawMessage(`[{"company": "New Corp", "position": "Engineer"}]`)
	require.NoError(t, Section(&doc, "experience", raw))

	// Old entries are gone: the sub-form owns the full section shape.
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "New Corp", doc.Experience[0].Company)
	assert.NotEqual(t, "exp-old", doc.Experience[0].ID)
}

func TestSection_ContactAndSummary(t *testing.T) {
	doc := Defaults()

	require.NoError(t, Section(&doc, "contact", json.RawMessage(`{"name": "Ada", "email": "ada@example.com"}`)))
	require.NoError(t, Section(&doc, "summary", json.RawMessage(`"A concise professional summary."`)))

	assert.Equal(t, "Ada", doc.Contact.Name)
	assert.Equal(t, "A concise professional summary.", doc.Summary)
}

func TestSection_SkillsAcceptsEitherShape(t *testing.T) {
	doc := Defaults()

	require.NoError(t, Section(&doc, "skills", json.RawMessage(`{"technical": ["Go"], "soft": ["Leadership"]}`)))
	require.Len(t, doc.Skills, 2)

	require.NoError(t, Section(&doc, "skills", json.RawMessage(`[{"category": "Backend", "items": ["Go"]}]`)))
	require.Len(t, doc.Skills, 1)
	assert.Equal(t, "Backend", doc.Skills[0].Category)
}

func TestSection_MalformedRawDegradesToDefault(t *testing.T) {
	doc := Defaults()
	doc.Summary = "existing"

	require.NoError(t, Section(&doc, "summary", json.RawMessage(`{broken`)))
	assert.Equal(t, "", doc.Summary)

	require.NoError(t, Section(&doc, "experience", json.RawMessage(`"not a list"`)))
	assert.Empty(t, doc.Experience)
	assert.NotNil(t, doc.Experience)
}

func TestSection_UnknownSectionRejected(t *testing.T) {
	doc := Defaults()
	err := Section(&doc, "references", json.RawMessage(`[]`))

	var unknownErr *UnknownSectionError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "references", unknownErr.Section)
}
