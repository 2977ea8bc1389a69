package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/coverletter-agent/internal/config"
	"github.com/jonathan/coverletter-agent/internal/ingestion"
	"github.com/jonathan/coverletter-agent/internal/jobposting"
	"github.com/jonathan/coverletter-agent/internal/letter"
	"github.com/jonathan/coverletter-agent/internal/llm"
	"github.com/jonathan/coverletter-agent/internal/matching"
	"github.com/jonathan/coverletter-agent/internal/observability"
	"github.com/jonathan/coverletter-agent/internal/resume"
	"github.com/jonathan/coverletter-agent/internal/types"
	"github.com/jonathan/coverletter-agent/internal/validation"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cover letter from a resume and a job posting",
	Long:  "Generate a tailored cover letter from a resume file and a job posting given as a text file or a URL. The letter is printed to stdout; the skill match analysis goes to stderr.",
	RunE:  runGenerate,
}

var (
	generateResumeFile    string
	generateJobFile       string
	generateJobURL        string
	generateStyle         string
	generateCustomMessage string
	generateUseBrowser    bool
	generateOutFile       string
)

func init() {
	generateCmd.Flags().StringVarP(&generateResumeFile, "resume", "r", "", "Path to resume file (PDF, DOCX, DOC or TXT)")
	generateCmd.Flags().StringVarP(&generateJobFile, "job", "j", "", "Path to job posting text file")
	generateCmd.Flags().StringVar(&generateJobURL, "job-url", "", "URL of the job posting")
	generateCmd.Flags().StringVarP(&generateStyle, "style", "s", "professional", "Letter style: professional, creative, technical or entry_level")
	generateCmd.Flags().StringVar(&generateCustomMessage, "custom-message", "", "Personal note to weave into the letter")
	generateCmd.Flags().BoolVar(&generateUseBrowser, "use-browser", false, "Render the job posting in a headless browser when the HTTP fetch yields too little text")
	generateCmd.Flags().StringVarP(&generateOutFile, "out", "o", "", "Write the letter to this file instead of stdout")
	_ = generateCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	if (generateJobFile == "") == (generateJobURL == "") {
		return fmt.Errorf("provide exactly one of --job or --job-url")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.LogJSON, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// Resume extraction and job ingestion are independent; run them
	// concurrently since the URL path can involve a slow fetch.
	var resumeText, jobText string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := ingestion.ExtractFile(generateResumeFile)
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
		if err := validation.ResumeText(text); err != nil {
			return err
		}
		resumeText = text
		return nil
	})
	g.Go(func() error {
		var text string
		if generateJobURL != "" {
			fetched, err := ingestion.IngestFromURL(gctx, generateJobURL, generateUseBrowser, logger)
			if err != nil {
				return err
			}
			text = fetched
		} else {
			content, err := os.ReadFile(generateJobFile)
			if err != nil {
				return fmt.Errorf("failed to read job posting: %w", err)
			}
			text = ingestion.CleanText(string(content))
		}
		if err := validation.JobDescription(text); err != nil {
			return err
		}
		jobText = text
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	profile := resume.Extract(resumeText)
	job := jobposting.Analyze(jobText)

	client, err := providerClient(ctx, cfg)
	if err != nil {
		return err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	genCtx, cancel := context.WithTimeout(ctx, cfg.ProviderTimeout)
	defer cancel()

	result := letter.New(client, logger).Generate(genCtx, profile, job, types.ParseStyle(generateStyle), generateCustomMessage)
	if !result.Success {
		return fmt.Errorf("generation failed: %s", result.Error)
	}

	matchCfg := matching.DefaultConfig()
	matchCfg.FuzzyThreshold = cfg.FuzzyThreshold
	report := matching.New(nil, matchCfg).Match(profile.Skills, job.RequiredSkills)

	fmt.Fprintf(os.Stderr, "Match score: %.1f%% (%d of %d required skills)\n",
		report.MatchScorePercent, report.TotalMatched, report.TotalRequired)
	for _, rec := range report.Recommendations {
		fmt.Fprintf(os.Stderr, "  - %s\n", rec)
	}
	fmt.Fprintf(os.Stderr, "Word count: %d\n", result.WordCount)

	if generateOutFile != "" {
		if err := os.WriteFile(generateOutFile, []byte(result.Letter+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write letter: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Letter written to %s\n", generateOutFile)
		return nil
	}
	fmt.Println(result.Letter)
	return nil
}

// providerClient picks the LLM provider from the configured keys,
// preferring Gemini. A nil client means fallback-only generation.
func providerClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	switch {
	case cfg.GeminiAPIKey != "":
		return llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.GeminiAPIKey)
	case cfg.OpenAIAPIKey != "":
		return llm.NewClient(ctx, llm.DefaultOpenAIConfig(), cfg.OpenAIAPIKey)
	default:
		return nil, nil
	}
}
