package types

import "strings"

// Style selects the tone of the generated cover letter
type Style string

// Available cover letter styles
const (
	StyleProfessional Style = "professional"
	StyleCreative     Style = "creative"
	StyleTechnical    Style = "technical"
	StyleEntryLevel   Style = "entry_level"
)

// ParseStyle maps a user-supplied style name to a Style.
// Unknown or empty values fall back to StyleProfessional.
func ParseStyle(s string) Style {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleCreative:
		return StyleCreative
	case StyleTechnical:
		return StyleTechnical
	case StyleEntryLevel:
		return StyleEntryLevel
	default:
		return StyleProfessional
	}
}

// LetterResult is the outcome of one cover letter generation request.
// Success is false only when the deterministic fallback itself cannot run
// (nil profiles), which is a programming error rather than a runtime
// condition; provider failures are recovered internally and still yield
// Success true.
type LetterResult struct {
	Success         bool     `json:"success"`
	Letter          string   `json:"cover_letter,omitempty"`
	TemplateUsed    Style    `json:"template_used,omitempty"`
	WordCount       int      `json:"word_count,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	Error           string   `json:"error,omitempty"`
}
