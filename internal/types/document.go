// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "slices"

// Document represents the canonical in-memory resume. Every scalar field is a
// string (never a pointer) and every sequence field is non-nil after
// normalization, so consumers never null-check.
type Document struct {
	Contact        Contact              `json:"contact"`
	Summary        string               `json:"summary"`
	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
	Languages      []LanguageEntry      `json:"languages"`
	Achievements   []AchievementEntry   `json:"achievements"`
	Skills         []SkillCategory      `json:"skills"`
	Template       string               `json:"template"`
	Theme          Theme                `json:"theme"`
}

// Contact holds identity and profile links. Name and Email are required for
// the document to be publishable; everything else is optional.
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
	GitHub   string `json:"github"`
	LeetCode string `json:"leetcode"`
}

// ExperienceEntry represents a single work experience item with a stable ID
type ExperienceEntry struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// EducationEntry represents a single education item with a stable ID
type EducationEntry struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartYear   string `json:"start_year"`
	EndYear     string `json:"end_year"`
	Grade       string `json:"grade,omitempty"`
}

// ProjectEntry represents a single project item with a stable ID
type ProjectEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
}

// CertificationEntry represents a single certification item with a stable ID
type CertificationEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// LanguageEntry represents a spoken language with a stable ID
type LanguageEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// AchievementEntry represents a single achievement item with a stable ID
type AchievementEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SkillCategory groups skill items under a named category. Category names are
// unique within a document (case-insensitive).
type SkillCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// LegacySkills is the flat pre-categorization skills shape still produced by
// older extraction payloads. It never survives past the normalizer.
type LegacySkills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// Theme holds template colors as hex strings without the leading '#'
type Theme struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// SkillItemCount returns the total number of skill items across all categories
func (d *Document) SkillItemCount() int {
	count := 0
	for _, cat := range d.Skills {
		count += len(cat.Items)
	}
	return count
}

// Clone returns a deep copy of the document. Snapshots and restores always
// operate on clones so the live document and stored versions never share
// backing arrays. Empty sequences stay non-nil empty, preserving the
// normalization invariant across copies.
func (d *Document) Clone() Document {
	out := *d
	out.Experience = slices.Clone(d.Experience)
	out.Education = slices.Clone(d.Education)
	out.Projects = slices.Clone(d.Projects)
	for i := range out.Projects {
		out.Projects[i].Technologies = slices.Clone(out.Projects[i].Technologies)
	}
	out.Certifications = slices.Clone(d.Certifications)
	out.Languages = slices.Clone(d.Languages)
	out.Achievements = slices.Clone(d.Achievements)
	out.Skills = slices.Clone(d.Skills)
	for i := range out.Skills {
		out.Skills[i].Items = slices.Clone(out.Skills[i].Items)
	}
	return out
}
