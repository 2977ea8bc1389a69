package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-agent/internal/ingestion"
	"github.com/jonathan/coverletter-agent/internal/resume"
	"github.com/jonathan/coverletter-agent/internal/validation"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume file into structured profile JSON",
	RunE:  runParseResume,
}

var parseResumeFile string

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeFile, "resume", "r", "", "Path to resume file (PDF, DOCX, DOC or TXT)")
	_ = parseResumeCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	text, err := ingestion.ExtractFile(parseResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	if err := validation.ResumeText(text); err != nil {
		return err
	}

	out, err := json.MarshalIndent(resume.Extract(text), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
