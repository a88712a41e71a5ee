package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/schemas"
)

var normalizeOut string

var normalizeCmd = &cobra.Command{
	Use:   "normalize <resume.json>",
	Short: "Normalize a resume payload to canonical form",
	Long:  `Normalize a resume JSON payload: coerce legacy shapes, synthesize missing entry IDs, deduplicate skill categories, and emit the canonical document. Schema violations are reported as warnings; the payload is normalized regardless.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVar(&normalizeOut, "out", "", "Write the canonical document to a file instead of stdout")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	// Advisory only: normalization degrades malformed fields instead of failing
	if err := schemas.ValidateDocumentPayload(data); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: payload has schema violations:\n%v\n", err)
	}

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	body = append(body, '\n')

	if normalizeOut != "" {
		if err := os.WriteFile(normalizeOut, body, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	_, err = cmd.OutOrStdout().Write(body)
	return err
}
