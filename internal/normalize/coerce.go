package normalize

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// newEntryID synthesizes a stable entry identifier of the form
// {section-prefix}-{index}-{creation-timestamp}. IDs are assigned once at
// creation and never derived from array position afterwards.
func newEntryID(prefix string, index int) string {
	return fmt.Sprintf("%s-%d-%d", prefix, index, now().UnixMilli())
}

// stringValue coerces a payload value to a string; anything else degrades to ""
func stringValue(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// mapValue coerces a payload value to an object
func mapValue(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// sliceValue coerces a payload value to a sequence; anything else degrades to nil
func sliceValue(v any) []any {
	s, _ := v.([]any)
	return s
}

// stringSlice coerces a payload value to a sequence of strings, skipping
// non-string elements and blanks
func stringSlice(v any) []string {
	items := sliceValue(v)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := stringValue(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// field returns the first non-empty string among the given keys. Older
// payload shapes used different field names; the alias lists below cover the
// variants seen in extraction output and legacy storage.
func field(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := stringValue(m[key]); s != "" {
			return s
		}
	}
	return ""
}

func contactFrom(m map[string]any) types.Contact {
	return types.Contact{
		Name:     field(m, "name", "full_name", "fullName"),
		Email:    plausibleOrEmpty(field(m, "email")),
		Phone:    field(m, "phone", "phone_number"),
		Location: field(m, "location", "address", "city"),
		LinkedIn: field(m, "linkedin", "linkedin_url"),
		Website:  field(m, "website", "portfolio"),
		GitHub:   field(m, "github", "github_url"),
		LeetCode: field(m, "leetcode", "coding_profile"),
	}
}

func themeFrom(v any) types.Theme {
	m, ok := mapValue(v)
	if !ok {
		return types.Theme{}
	}
	return types.Theme{
		PrimaryColor:   strings.TrimPrefix(field(m, "primary_color", "primaryColor"), "#"),
		SecondaryColor: strings.TrimPrefix(field(m, "secondary_color", "secondaryColor"), "#"),
	}
}

func experienceEntries(v any) []types.ExperienceEntry {
	items := sliceValue(v)
	out := make([]types.ExperienceEntry, 0, len(items))
	for i, item := range items {
		m, ok := mapValue(item)
		if !ok {
			continue
		}
		entry := types.ExperienceEntry{
			ID:          field(m, "id"),
			Company:     field(m, "company", "employer", "organization"),
			Position:    field(m, "position", "title", "role"),
			Location:    field(m, "location"),
			StartDate:   field(m, "start_date", "startDate", "from"),
			EndDate:     field(m, "end_date", "endDate", "to"),
			Description: field(m, "description", "details"),
		}
		if entry.ID == "" {
			entry.ID = newEntryID("exp", i)
		}
		out = append(out, entry)
	}
	return out
}

func educationEntries(v any) []types.EducationEntry {
	items := sliceValue(v)
	out := make([]types.EducationEntry, 0, len(items))
	for i, item := range items {
		m, ok := mapValue(item)
		if !ok {
			continue
		}
		entry := types.EducationEntry{
			ID:          field(m, "id"),
			Institution: field(m, "institution", "school", "university"),
			Degree:      field(m, "degree"),
			Field:       field(m, "field", "field_of_study", "major"),
			StartYear:   field(m, "start_year", "startYear", "from"),
			EndYear:     field(m, "end_year", "endYear", "to"),
			Grade:       field(m, "grade", "gpa"),
		}
		if entry.ID == "" {
			entry.ID = newEntryID("edu", i)
		}
		out = append(out, entry)
	}
	return out
}

func projectEntries(v any) []types.ProjectEntry {
	items := sliceValue(v)
	out := make([]types.ProjectEntry, 0, len(items))
	for i, item := range items {
		m, ok := mapValue(item)
		if !ok {
			continue
		}
		entry := types.ProjectEntry{
			ID:           field(m, "id"),
			Name:         field(m, "name", "title"),
			Description:  field(m, "description", "details"),
			Technologies: stringSlice(m["technologies"]),
			URL:          field(m, "url", "link"),
		}
		if entry.ID == "" {
			entry.ID = newEntryID("proj", i)
		}
		out = append(out, entry)
	}
	return out
}

func certificationEntries(v any) []types.CertificationEntry {
	items := sliceValue(v)
	out := make([]types.CertificationEntry, 0, len(items))
	for i, item := range items {
		m, ok := mapValue(item)
		if !ok {
			continue
		}
		entry := types.CertificationEntry{
			ID:     field(m, "id"),
			Name:   field(m, "name", "title"),
			Issuer: field(m, "issuer", "organization"),
			Year:   field(m, "year", "date"),
		}
		if entry.ID == "" {
			entry.ID = newEntryID("cert", i)
		}
		out = append(out, entry)
	}
	return out
}

func languageEntries(v any) []types.LanguageEntry {
	items := sliceValue(v)
	out := make([]types.LanguageEntry, 0, len(items))
	for i, item := range items {
		// Extraction sometimes emits bare language names
		if s := stringValue(item); s != "" {
			out = append(out, types.LanguageEntry{ID: newEntryID("lang", i), Name: s})
			continue
		}
		m, ok := mapValue(item)
		if !ok {
			continue
		}
		entry := types.LanguageEntry{
			ID:          field(m, "id"),
			Name:        field(m, "name", "language"),
			Proficiency: field(m, "proficiency", "level"),
		}
		if entry.ID == "" {
			entry.ID = newEntryID("lang", i)
		}
		out = append(out, entry)
	}
	return out
}

func achievementEntries(v any) []types.AchievementEntry {
	items := sliceValue(v)
	out := make([]types.AchievementEntry, 0, len(items))
	for i, item := range items {
		if s := stringValue(item); s != "" {
			out = append(out, types.AchievementEntry{ID: newEntryID("ach", i), Title: s})
			continue
		}
		m, ok := mapValue(item)
		if !ok {
			continue
		}
		entry := types.AchievementEntry{
			ID:          field(m, "id"),
			Title:       field(m, "title", "name"),
			Description: field(m, "description", "details"),
		}
		if entry.ID == "" {
			entry.ID = newEntryID("ach", i)
		}
		out = append(out, entry)
	}
	return out
}
