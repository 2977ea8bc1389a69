package letter

import (
	"fmt"
	"strings"

	"github.com/jonathan/coverletter-agent/internal/types"
)

// fallbackLetter composes a deterministic cover letter from the extracted
// profiles. It is used when no provider is configured or the provider
// call fails, and always succeeds.
func fallbackLetter(profile *types.ResumeProfile, job *types.JobProfile, style types.Style, customMessage string) string {
	title := jobTitleOrDefault(job, "the advertised position")
	company := orDefault(job.Company.Name, "your company")
	name := orDefault(profile.Contact.Name, "[Your Name]")

	var paragraphs []string
	paragraphs = append(paragraphs, "Dear Hiring Manager,")
	paragraphs = append(paragraphs, opening(style, title, company))

	if body := backgroundParagraph(profile); body != "" {
		paragraphs = append(paragraphs, body)
	}
	if profile.Summary != "" && profile.Summary != types.NoSummary {
		paragraphs = append(paragraphs, profile.Summary)
	}
	if strings.TrimSpace(customMessage) != "" {
		paragraphs = append(paragraphs, strings.TrimSpace(customMessage))
	}

	paragraphs = append(paragraphs,
		fmt.Sprintf("I would welcome the opportunity to discuss how my background can contribute to %s. Thank you for your time and consideration.", company))
	paragraphs = append(paragraphs, "Sincerely,\n"+name)

	return strings.Join(paragraphs, "\n\n")
}

func opening(style types.Style, title, company string) string {
	switch style {
	case types.StyleCreative:
		return fmt.Sprintf("When I saw the %s opening at %s, I knew I had to apply.", title, company)
	case types.StyleEntryLevel:
		return fmt.Sprintf("I am excited to begin my career as %s at %s and eager to learn from your team.", title, company)
	default:
		return fmt.Sprintf("I am writing to express my strong interest in the %s position at %s.", title, company)
	}
}

// backgroundParagraph summarizes skills and the most recent role.
func backgroundParagraph(profile *types.ResumeProfile) string {
	var sentences []string
	if len(profile.Skills) > 0 {
		skills := topN(profile.Skills, maxPromptSkills)
		sentences = append(sentences,
			fmt.Sprintf("My background includes experience with %s.", strings.Join(skills, ", ")))
	}
	if len(profile.Experience) > 0 {
		exp := profile.Experience[0]
		sentences = append(sentences,
			fmt.Sprintf("Most recently I worked as %s at %s.", exp.Title, exp.Company))
	}
	return strings.Join(sentences, " ")
}
