// Package resume extracts a structured profile from raw resume text.
//
// Extraction is heuristic and total: it always returns a profile, leaving
// fields empty or at their sentinel values when the text gives nothing to
// work with.
package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/coverletter-agent/internal/sections"
	"github.com/jonathan/coverletter-agent/internal/textutil"
	"github.com/jonathan/coverletter-agent/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)

	jobTitlePattern = regexp.MustCompile(`(?i)([A-Za-z\s]+(?:Engineer|Developer|Manager|Analyst|Specialist|Coordinator|Director|Lead|Senior|Junior))[,\s]*(?:at|@|-)\s*([A-Za-z\s&.,]+)`)
	degreePattern   = regexp.MustCompile(`(?im)(Bachelor|Master|PhD|Doctorate|Diploma|Certificate)s?\s+(?:(?:of|in)\s+)?([A-Za-z\s]+?)(?:\s+(?:from|at)\s+([A-Za-z\s&.,]+?))?\s*$`)
	skillSeparator  = regexp.MustCompile(`[,•\-\n\t]+`)
)

var (
	skillsSectionRules = sections.Rules{
		{Name: "skills heading", Pattern: regexp.MustCompile(`(?is)(?:skills?|technical skills?|competencies):*\s*\n(.*?)(?:\n\s*\n|\n[A-Z]|$)`)},
	}
	experienceSectionRules = sections.Rules{
		{Name: "experience heading", Pattern: regexp.MustCompile(`(?is)(?:experience|employment|work history):*\s*\n(.*?)(?:\n\s*\n|\n(?:education|skills|projects)|$)`)},
	}
	educationSectionRules = sections.Rules{
		{Name: "education heading", Pattern: regexp.MustCompile(`(?is)(?:education|academic background|qualifications):*\s*\n(.*?)(?:\n\s*\n|\n(?:experience|skills|projects)|$)`)},
	}
	summaryRules = sections.Rules{
		{Name: "summary heading", Pattern: regexp.MustCompile(`(?is)(?:summary|objective|profile|about):*\s*\n(.*?)(?:\n\s*\n|\n[A-Z]|$)`)},
		{Name: "leading block", Pattern: regexp.MustCompile(`(?is)^(.*?)(?:\n\s*\n|\nexperience|\neducation|\nskills)`)},
	}
	projectsSectionRules = sections.Rules{
		{Name: "projects heading", Pattern: regexp.MustCompile(`(?is)(?:projects?|portfolio):*\s*\n(.*?)(?:\n\s*\n|\n(?:experience|education|skills)|$)`)},
	}
)

// skillVocabulary is scanned against the whole document, independent of
// any skills section. Entries are lower case.
var skillVocabulary = []string{
	// Programming languages
	"python", "javascript", "java", "c++", "c#", "php", "ruby", "go", "rust",
	"typescript", "swift", "kotlin", "scala", "matlab", "sql",

	// Web technologies
	"html", "css", "react", "angular", "vue", "node.js", "express", "django",
	"flask", "spring", "laravel", "rails", "asp.net",

	// Databases
	"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle",
	"sqlite", "cassandra", "dynamodb",

	// Cloud and DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform",
	"ansible", "git", "gitlab", "github",

	// Data science and AI
	"machine learning", "deep learning", "tensorflow", "pytorch", "scikit-learn",
	"pandas", "numpy", "matplotlib", "seaborn", "jupyter",

	// General skills
	"project management", "agile", "scrum", "leadership", "communication",
	"problem solving", "analytical thinking",
}

// Extract builds a ResumeProfile from raw resume text. It never fails;
// unrecognized sections simply stay empty.
func Extract(text string) *types.ResumeProfile {
	profile := types.EmptyResumeProfile()
	profile.Contact = extractContact(text)
	profile.Skills = extractSkills(text)
	profile.Experience = extractExperience(text)
	profile.Education = extractEducation(text)
	profile.Summary = extractSummary(text)
	profile.Projects = extractProjects(text)
	return profile
}

func extractContact(text string) types.ContactInfo {
	var contact types.ContactInfo

	contact.Email = emailPattern.FindString(text)
	contact.Phone = strings.TrimSpace(phonePattern.FindString(text))
	contact.LinkedIn = linkedinPattern.FindString(text)
	contact.GitHub = githubPattern.FindString(text)

	// The name is usually one of the first few lines: a short run of
	// alphabetic words, periods permitted for initials.
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if looksLikeName(line) {
			contact.Name = line
			break
		}
	}
	return contact
}

func looksLikeName(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > 4 {
		return false
	}
	for _, word := range words {
		stripped := strings.ReplaceAll(word, ".", "")
		if stripped == "" || !isAlpha(stripped) {
			return false
		}
	}
	return true
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}

// extractSkills merges the vocabulary scan with a dedicated skills
// section, preserving first-seen order and deduplicating case
// insensitively.
func extractSkills(text string) []string {
	found := []string{}
	seen := map[string]bool{}
	lower := strings.ToLower(text)

	for _, skill := range skillVocabulary {
		if strings.Contains(lower, skill) {
			found = textutil.DedupeFold(found, seen, textutil.TitleCase(skill))
		}
	}

	for _, body := range skillsSectionRules.All(text) {
		for _, candidate := range skillSeparator.Split(strings.TrimSpace(body), -1) {
			candidate = strings.TrimSpace(candidate)
			if candidate != "" && len(candidate) < 50 {
				found = textutil.DedupeFold(found, seen, textutil.TitleCase(candidate))
			}
		}
	}
	return found
}

func extractExperience(text string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	for _, body := range experienceSectionRules.All(text) {
		body = strings.TrimSpace(body)
		for _, m := range jobTitlePattern.FindAllStringSubmatch(body, -1) {
			title := strings.TrimSpace(m[1])
			company := strings.TrimSpace(m[2])
			entries = append(entries, types.ExperienceEntry{
				Title:       title,
				Company:     company,
				Description: extractJobDescription(body, title, company),
			})
		}
	}
	return entries
}

// extractJobDescription collects the lines following the title/company
// line until the first blank line: bullets, lines mentioning
// responsibilities, and any line long enough to be prose.
func extractJobDescription(body, title, company string) string {
	titleLower := strings.ToLower(title)
	companyLower := strings.ToLower(company)

	var descLines []string
	foundJob := false
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		if strings.Contains(lower, titleLower) && strings.Contains(lower, companyLower) {
			foundJob = true
			continue
		}
		if !foundJob {
			continue
		}
		switch {
		case line == "":
			return strings.Join(descLines, " ")
		case strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.Contains(lower, "responsible"):
			descLines = append(descLines, line)
		case len(line) > 30:
			descLines = append(descLines, line)
		}
	}
	return strings.Join(descLines, " ")
}

func extractEducation(text string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	for _, body := range educationSectionRules.All(text) {
		for _, m := range degreePattern.FindAllStringSubmatch(strings.TrimSpace(body), -1) {
			degreeType := strings.TrimSpace(m[1])
			field := strings.TrimSpace(m[2])
			institution := strings.TrimSpace(m[3])
			if institution == "" {
				institution = types.NotSpecified
			}
			entries = append(entries, types.EducationEntry{
				Degree:      degreeType + " in " + field,
				Field:       field,
				Institution: institution,
			})
		}
	}
	return entries
}

// extractSummary tries the dedicated summary section, then the document's
// leading block, then the first substantial paragraph that mentions
// experience.
func extractSummary(text string) string {
	for _, rule := range summaryRules {
		if body, ok := rule.Find(text); ok {
			summary := strings.TrimSpace(body)
			if len(summary) > 50 {
				return summary
			}
		}
	}

	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if len(paragraph) > 100 && strings.Contains(strings.ToLower(paragraph), "experience") {
			return paragraph
		}
	}
	return types.NoSummary
}

func extractProjects(text string) []types.Project {
	projects := []types.Project{}
	for _, body := range projectsSectionRules.All(text) {
		for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || len(line) > 30 {
				projects = append(projects, types.Project{
					Name:        textutil.Truncate(line, 50),
					Description: line,
				})
			}
		}
	}
	return projects
}
