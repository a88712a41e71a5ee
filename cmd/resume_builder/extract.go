package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/extraction"
	"github.com/jonathan/resume-builder/internal/llm"
)

var extractHTML bool

var extractCmd = &cobra.Command{
	Use:   "extract <resume.txt>",
	Short: "Extract a structured resume from free-form text",
	Long:  `Extract a canonical resume document from a plain-text or HTML resume using the Gemini API. Requires GEMINI_API_KEY.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractHTML, "html", false, "Treat the input file as HTML and strip markup first")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	text := string(data)
	if extractHTML || strings.HasSuffix(args[0], ".html") {
		text, err = extraction.StripHTML(text)
		if err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	doc, err := extraction.NewGeminiExtractor(client).Extract(ctx, text)
	if err != nil {
		return err
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	body = append(body, '\n')
	_, err = cmd.OutOrStdout().Write(body)
	return err
}
