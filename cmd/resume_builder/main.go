// Package main provides the entry point for the resume builder CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume Builder wizard and API server",
	Long:  "Resume Builder runs the multi-step resume wizard: document normalization, completeness checks, strength scoring, version snapshots, and AI-assisted extraction, exposed as a CLI and a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
