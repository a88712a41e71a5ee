// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/scoring"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocumentSummary outputs a human-readable overview of a resume document.
func (p *Printer) PrintDocumentSummary(doc *types.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Contact.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", doc.Contact.Email))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experience entries:  %d\n", len(doc.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:   %d\n", len(doc.Education)))
	sb.WriteString(fmt.Sprintf("Projects:            %d\n", len(doc.Projects)))
	sb.WriteString(fmt.Sprintf("Skills listed:       %d\n", doc.SkillItemCount()))

	if len(doc.Skills) > 0 {
		sb.WriteString("\nSkill Categories:\n")
		count := min(len(doc.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			cat := doc.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d items)\n", cat.Category, len(cat.Items)))
		}
		if len(doc.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Skills)-maxItemsToShow))
		}
	}

	p.printBox("RESUME DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the strength score with its improvement suggestions.
func (p *Printer) PrintScore(result scoring.Result) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d / 100\n", result.Value))

	if len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(result.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Suggestions[i]))
		}
		if len(result.Suggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Suggestions)-maxItemsToShow))
		}
	}

	p.printBox("RESUME STRENGTH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMissingSections outputs the required sections that still need content.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMissingSections(missing []string) {
	if len(missing) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL REQUIRED SECTIONS COMPLETE")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d required sections need content:\n\n", len(missing)))
	for _, section := range missing {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", section))
	}

	p.printBox("MISSING SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSnapshotList outputs saved version snapshots, newest first.
func (p *Printer) PrintSnapshotList(summaries []types.VersionSummary) {
	if len(summaries) == 0 {
		p.printBox("SAVED VERSIONS", "No saved versions")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d saved versions:\n\n", len(summaries)))

	count := min(len(summaries), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := summaries[i]
		sb.WriteString(fmt.Sprintf("• %s\n", s.VersionName))
		sb.WriteString(fmt.Sprintf("  %s  %s\n", s.VersionID, s.CreatedAt.Format("2006-01-02 15:04")))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(summaries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(summaries)-maxItemsToShow))
	}

	p.printBox("SAVED VERSIONS", sb.String())
}
