package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/types"
)

// GeminiGenerator produces summaries directly through an LLM client,
// bypassing the metered service. Used for CLI and local workflows.
type GeminiGenerator struct {
	client llm.Client
}

// NewGeminiGenerator creates an LLM-backed summary generator.
func NewGeminiGenerator(client llm.Client) *GeminiGenerator {
	return &GeminiGenerator{client: client}
}

// Summary generates a professional summary from the document's
// experience, skills, and education.
func (g *GeminiGenerator) Summary(ctx context.Context, doc types.Document) (string, error) {
	prompt := buildSummaryPrompt(doc)
	text, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// buildSummaryPrompt describes the candidate from structured data so the
// model writes from facts rather than inventing them.
func buildSummaryPrompt(doc types.Document) string {
	var sb strings.Builder
	sb.WriteString("Write a professional resume summary (2-4 sentences, first person implied, no pronouns) for this candidate.\n\n")

	if doc.Contact.Name != "" {
		fmt.Fprintf(&sb, "Name: %s\n", doc.Contact.Name)
	}
	for _, exp := range doc.Experience {
		fmt.Fprintf(&sb, "Experience: %s at %s (%s - %s)\n", exp.Position, exp.Company, exp.StartDate, exp.EndDate)
	}
	for _, edu := range doc.Education {
		fmt.Fprintf(&sb, "Education: %s in %s, %s\n", edu.Degree, edu.Field, edu.Institution)
	}
	for _, cat := range doc.Skills {
		fmt.Fprintf(&sb, "Skills (%s): %s\n", cat.Category, strings.Join(cat.Items, ", "))
	}

	sb.WriteString("\nReturn only the summary text.")
	return sb.String()
}
