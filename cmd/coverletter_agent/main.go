// Package main provides the entry point for the cover letter agent server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coverletter_agent",
	Short: "AI Cover Letter Generator",
	Long:  "Cover letter agent extracts structured profiles from resumes and job postings, matches skills, and generates tailored cover letters via REST API or one-shot commands.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
