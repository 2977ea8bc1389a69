// Package letter turns extracted resume and job profiles into a cover
// letter, preferring an LLM provider and falling back to a deterministic
// template when none is available.
package letter

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/coverletter-agent/internal/llm"
	"github.com/jonathan/coverletter-agent/internal/types"
)

// generationState drives the provider-or-fallback decision. Generation
// starts in stateTryProvider when a client is present and degrades to
// stateUseFallback on any provider error; the fallback state cannot fail.
type generationState int

const (
	stateTryProvider generationState = iota
	stateUseFallback
)

// Generator produces cover letters. The zero client is valid: a
// Generator without a provider serves every request from the fallback
// template.
type Generator struct {
	client llm.Client
	logger *zap.Logger
}

// New builds a Generator. client may be nil when no provider is
// configured.
func New(client llm.Client, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{client: client, logger: logger}
}

// Generate produces a cover letter for the profiles in the requested
// style. Provider failures are recovered via the deterministic fallback;
// the only failing condition is missing profiles.
func (g *Generator) Generate(ctx context.Context, profile *types.ResumeProfile, job *types.JobProfile, style types.Style, customMessage string) *types.LetterResult {
	if profile == nil || job == nil {
		return &types.LetterResult{
			Success: false,
			Error:   "resume and job profiles are required",
		}
	}

	state := stateUseFallback
	if g.client != nil {
		state = stateTryProvider
	}

	var text string
	if state == stateTryProvider {
		generated, err := g.client.Complete(ctx, buildPrompt(style, profile, job, customMessage))
		if err != nil {
			g.logger.Warn("provider generation failed, using fallback template",
				zap.String("model", g.client.Model()),
				zap.Error(err))
			state = stateUseFallback
		} else {
			text = generated
		}
	}
	if state == stateUseFallback {
		text = fallbackLetter(profile, job, style, customMessage)
	}

	text = postProcess(text, profile, job)

	return &types.LetterResult{
		Success:         true,
		Letter:          text,
		TemplateUsed:    style,
		WordCount:       len(strings.Fields(text)),
		Recommendations: improvementSuggestions(profile, job),
	}
}

// postProcess trims the letter and substitutes placeholder tokens the
// provider tends to leave in.
func postProcess(text string, profile *types.ResumeProfile, job *types.JobProfile) string {
	text = strings.TrimSpace(text)
	if name := profile.Contact.Name; name != "" {
		text = strings.ReplaceAll(text, "[Your Name]", name)
	}
	if company := job.Company.Name; company != "" {
		text = strings.ReplaceAll(text, "[Company Name]", company)
	}
	return text
}

// improvementSuggestions flags gaps between the resume and the posting.
func improvementSuggestions(profile *types.ResumeProfile, job *types.JobProfile) []string {
	suggestions := []string{}

	have := make(map[string]bool, len(profile.Skills))
	for _, skill := range profile.Skills {
		have[strings.ToLower(skill)] = true
	}
	var missing []string
	for _, skill := range job.RequiredSkills {
		if !have[strings.ToLower(skill)] {
			missing = append(missing, skill)
		}
		if len(missing) == 3 {
			break
		}
	}
	if len(missing) > 0 {
		suggestions = append(suggestions, "Consider highlighting experience with: "+strings.Join(missing, ", "))
	}
	if len(profile.Experience) == 0 {
		suggestions = append(suggestions, "Consider adding more specific work experience examples")
	}
	if len(profile.Education) == 0 {
		suggestions = append(suggestions, "Ensure educational background is clearly stated")
	}
	return suggestions
}
