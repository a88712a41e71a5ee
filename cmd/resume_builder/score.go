package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/normalize"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/scoring"
	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/types"
)

var scoreJSON bool

var scoreCmd = &cobra.Command{
	Use:   "score <resume.json>",
	Short: "Score a resume document",
	Long:  `Score a resume JSON file against the strength rubric and print improvement suggestions along with the sections still missing for finalization.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	result := scoring.Score(&doc)

	if scoreJSON {
		missing := make([]string, 0)
		for _, def := range sections.MissingRequired(&doc) {
			missing = append(missing, string(def.ID))
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"score":            result,
			"missing_sections": missing,
		})
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintDocumentSummary(&doc)
	printer.PrintScore(result)

	missing := sections.MissingRequired(&doc)
	titles := make([]string, 0, len(missing))
	for _, def := range missing {
		titles = append(titles, def.Title)
	}
	printer.PrintMissingSections(titles)
	return nil
}

// loadDocument reads a resume payload file and normalizes it
func loadDocument(path string) (types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("failed to read resume file: %w", err)
	}
	return normalize.Payload(data), nil
}
