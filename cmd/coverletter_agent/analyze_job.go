package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-agent/internal/config"
	"github.com/jonathan/coverletter-agent/internal/ingestion"
	"github.com/jonathan/coverletter-agent/internal/jobposting"
	"github.com/jonathan/coverletter-agent/internal/observability"
	"github.com/jonathan/coverletter-agent/internal/validation"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Analyze a job posting into structured profile JSON",
	Long:  "Analyze a job posting, given as a text file or a URL, into a structured profile JSON with required skills, responsibilities, and experience level.",
	RunE:  runAnalyzeJob,
}

var (
	analyzeJobFile       string
	analyzeJobURL        string
	analyzeJobUseBrowser bool
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job posting text file")
	analyzeJobCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of the job posting")
	analyzeJobCmd.Flags().BoolVar(&analyzeJobUseBrowser, "use-browser", false, "Render the job posting in a headless browser when the HTTP fetch yields too little text")
	rootCmd.AddCommand(analyzeJobCmd)
}

func runAnalyzeJob(_ *cobra.Command, _ []string) error {
	if (analyzeJobFile == "") == (analyzeJobURL == "") {
		return fmt.Errorf("provide exactly one of --job or --job-url")
	}

	var text string
	if analyzeJobURL != "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger, err := observability.NewLogger(cfg.LogJSON, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		text, err = ingestion.IngestFromURL(context.Background(), analyzeJobURL, analyzeJobUseBrowser, logger)
		if err != nil {
			return err
		}
	} else {
		content, err := os.ReadFile(analyzeJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job posting: %w", err)
		}
		text = ingestion.CleanText(string(content))
	}
	if err := validation.JobDescription(text); err != nil {
		return err
	}

	out, err := json.MarshalIndent(jobposting.Analyze(text), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
