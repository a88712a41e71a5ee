package normalize

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Legacy category names used when converting the flat skills shape
const (
	technicalCategory = "Technical"
	softCategory      = "Soft Skills"
)

// Skills normalizes either skills shape into the canonical categorized form.
// A sequence of {category, items} objects passes through (minus empty
// categories); the legacy {technical, soft} object becomes two fixed
// categories, omitting either when its list is empty. Anything else degrades
// to an empty slice.
func Skills(v any) []types.SkillCategory {
	switch val := v.(type) {
	case []any:
		out := make([]types.SkillCategory, 0, len(val))
		for _, item := range val {
			m, ok := mapValue(item)
			if !ok {
				continue
			}
			out = append(out, types.SkillCategory{
				Category: field(m, "category", "name"),
				Items:    stringSlice(m["items"]),
			})
		}
		return CleanCategories(out)
	case map[string]any:
		return LegacySkills(types.LegacySkills{
			Technical: stringSlice(val["technical"]),
			Soft:      stringSlice(val["soft"]),
		})
	default:
		return []types.SkillCategory{}
	}
}

// LegacySkills converts the flat {technical, soft} shape into categorized
// skills, omitting either category when its list is empty.
func LegacySkills(legacy types.LegacySkills) []types.SkillCategory {
	out := make([]types.SkillCategory, 0, 2)
	if len(legacy.Technical) > 0 {
		out = append(out, types.SkillCategory{Category: technicalCategory, Items: legacy.Technical})
	}
	if len(legacy.Soft) > 0 {
		out = append(out, types.SkillCategory{Category: softCategory, Items: legacy.Soft})
	}
	return out
}

// CleanCategories drops empty categories and enforces case-insensitive
// category name uniqueness. Items from a duplicate category merge into the
// first occurrence, preserving order. Idempotent.
func CleanCategories(cats []types.SkillCategory) []types.SkillCategory {
	out := make([]types.SkillCategory, 0, len(cats))
	seen := make(map[string]int) // lowercased category name -> index in out

	for _, cat := range cats {
		name := strings.TrimSpace(cat.Category)
		items := make([]string, 0, len(cat.Items))
		for _, item := range cat.Items {
			if s := strings.TrimSpace(item); s != "" {
				items = append(items, s)
			}
		}
		if name == "" || len(items) == 0 {
			continue
		}

		key := strings.ToLower(name)
		if idx, exists := seen[key]; exists {
			out[idx].Items = append(out[idx].Items, items...)
			continue
		}
		out = append(out, types.SkillCategory{Category: name, Items: items})
		seen[key] = len(out) - 1
	}

	return out
}
