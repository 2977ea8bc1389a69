// Package jobposting extracts a structured profile from a job posting.
//
// Like the resume extractor this is heuristic and total: analysis always
// yields a profile, with sentinel values for anything the posting does not
// state.
package jobposting

import (
	"regexp"
	"strings"

	"github.com/jonathan/coverletter-agent/internal/sections"
	"github.com/jonathan/coverletter-agent/internal/textutil"
	"github.com/jonathan/coverletter-agent/internal/types"
)

var (
	// Company names never span lines, so the classes use a literal space
	// rather than \s.
	companyNameRules = sections.Rules{
		{Name: "labeled company", Pattern: regexp.MustCompile(`(?i)(?:company|organization|employer):[ \t]*([A-Za-z &.,]+)`)},
		{Name: "X is opener", Pattern: regexp.MustCompile(`(?m)^([A-Z][A-Za-z &.,]+)\s+is\s+`)},
		{Name: "join X", Pattern: regexp.MustCompile(`(?:join|work at|employment with)\s+([A-Z][A-Za-z &.,]+)`)},
	}
	companyDescRules = sections.Rules{
		{Name: "about us heading", Pattern: regexp.MustCompile(`(?is)(?:about us|company description|who we are):*\s*\n(.*?)(?:\n\s*\n|\n[A-Z])`)},
		{Name: "company sentence", Pattern: regexp.MustCompile(`([A-Z][^.]*(?:company|organization|business|firm)[^.]*\.)`)},
	}
	titleLabelRule = sections.Rule{
		Name:    "position label",
		Pattern: regexp.MustCompile(`(?i)(?:position|role|job title):\s*([^\n]+)`),
	}
	requiredSectionRules = sections.Rules{
		{Name: "requirements heading", Pattern: regexp.MustCompile(`(?is)(?:required|requirements|must have|essential):*\s*\n(.*?)(?:\n\s*\n|\n(?:preferred|nice|benefits)|$)`)},
		{Name: "minimum requirements", Pattern: regexp.MustCompile(`(?is)(?:you must have|minimum requirements):*\s*\n(.*?)(?:\n\s*\n|\n[A-Z])`)},
		{Name: "required skills heading", Pattern: regexp.MustCompile(`(?is)(?:required skills?|technical requirements):*\s*\n(.*?)(?:\n\s*\n|\n[A-Z])`)},
	}
	preferredSectionRules = sections.Rules{
		{Name: "preferred heading", Pattern: regexp.MustCompile(`(?is)(?:preferred|nice to have|bonus|plus|additional):*\s*\n(.*?)(?:\n\s*\n|\n[A-Z]|$)`)},
		{Name: "nice if you have", Pattern: regexp.MustCompile(`(?is)(?:nice if you have|would be great):*\s*\n(.*?)(?:\n\s*\n|\n[A-Z])`)},
		{Name: "desired skills heading", Pattern: regexp.MustCompile(`(?is)(?:preferred qualifications|desired skills):*\s*\n(.*?)(?:\n\s*\n|\n[A-Z])`)},
	}
	responsibilitiesRules = sections.Rules{
		{Name: "responsibilities heading", Pattern: regexp.MustCompile(`(?is)(?:responsibilities|duties|you will|what you'll do):*\s*\n(.*?)(?:\n\s*\n|\n(?:requirements|qualifications)|$)`)},
		{Name: "key responsibilities", Pattern: regexp.MustCompile(`(?is)(?:key responsibilities|main duties):*\s*\n(.*?)(?:\n\s*\n|\n[A-Z])`)},
		{Name: "in this role", Pattern: regexp.MustCompile(`(?is)(?:in this role|as a .+, you will):*\s*\n(.*?)(?:\n\s*\n|\n[A-Z])`)},
	}
	qualificationsRules = sections.Rules{
		{Name: "qualifications heading", Pattern: regexp.MustCompile(`(?is)(?:qualifications|education|degree):*\s*\n(.*?)(?:\n\s*\n|\n(?:experience|skills)|$)`)},
		{Name: "minimum qualifications", Pattern: regexp.MustCompile(`(?is)(?:minimum qualifications|educational requirements):*\s*\n(.*?)(?:\n\s*\n|\n[A-Z])`)},
		{Name: "degree sentence", Pattern: regexp.MustCompile(`(?i)(?:bachelor|master|phd|degree)([^.]+\.)`)},
	}
	benefitsRules = sections.Rules{
		{Name: "benefits heading", Pattern: regexp.MustCompile(`(?is)(?:benefits|perks|we offer|compensation):*\s*\n(.*?)(?:\n\s*\n|\n[A-Z]|$)`)},
		{Name: "common benefit", Pattern: regexp.MustCompile(`(?i)(?:health insurance|401k|vacation|remote work|flexible)`)},
		{Name: "compensation benefit", Pattern: regexp.MustCompile(`(?i)(?:competitive salary|stock options|bonus)`)},
	}

	// skillMentionPatterns pull individual skills out of prose. The skill
	// name is the last capture group of each pattern.
	skillMentionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:experience|proficiency|skills?)\s+(?:in|with|using)\s+([^,.\n]+)`),
		regexp.MustCompile(`(?i)(?:knowledge|understanding)\s+of\s+([^,.\n]+)`),
		regexp.MustCompile(`(?i)(?:proficient|expert)\s+in\s+([^,.\n]+)`),
		regexp.MustCompile(`(?i)(\d+\+?\s*years?)\s+(?:of\s+)?(?:experience\s+)?(?:with|in)\s+([^,.\n]+)`),
	}

	requirementsSectionPattern = regexp.MustCompile(`(?is)requirements:*\s*(.*?)(?:\n\s*\n|\z)`)
	bulletPattern              = regexp.MustCompile(`[•\-]\s*([^\n•\-]+)`)
	skillSeparator             = regexp.MustCompile(`[,;•\-\n\t]+`)
	itemSeparator              = regexp.MustCompile(`[•\-\n]+`)

	yearsExpPattern     = regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`)
	levelWordPattern    = regexp.MustCompile(`(?i)(?:senior|junior|entry.level|mid.level|experienced)`)
	minimumYearsPattern = regexp.MustCompile(`(?i)(?:minimum|at least)\s*(\d+)\s*years?`)
)

// roleWords mark a line as a probable job title.
var roleWords = []string{
	"engineer", "developer", "manager", "analyst", "specialist",
	"director", "coordinator", "lead", "senior", "junior",
}

// skillSkipPhrases filter requirement boilerplate out of skill lists.
var skillSkipPhrases = []string{
	"experience", "knowledge", "understanding", "proficiency",
	"years", "minimum", "required", "preferred", "must have",
	"should have", "ability to", "strong", "excellent",
}

// Analyze builds a JobProfile from raw posting text. It never fails;
// anything the posting does not state stays at its sentinel value.
func Analyze(text string) *types.JobProfile {
	profile := types.EmptyJobProfile()
	profile.Company = extractCompany(text)
	profile.Title = extractTitle(text)
	profile.RequiredSkills = extractRequiredSkills(text)
	profile.PreferredSkills = extractPreferredSkills(text)
	profile.Responsibilities = extractResponsibilities(text)
	profile.Qualifications = extractQualifications(text)
	profile.Benefits = extractBenefits(text)
	profile.JobType = extractJobType(text)
	profile.ExperienceLevel = extractExperienceLevel(text)
	profile.KeyRequirements = extractKeyRequirements(text)
	return profile
}

func extractCompany(text string) types.CompanyInfo {
	var company types.CompanyInfo
	if name, ok := companyNameRules.First(text); ok {
		company.Name = strings.TrimSpace(name)
	}
	if desc, ok := companyDescRules.First(text); ok {
		company.Description = strings.TrimSpace(desc)
	}
	return company
}

// extractTitle checks the first lines for role nouns, then falls back to
// an explicit position label.
func extractTitle(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 3 {
		lines = lines[:3]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		for _, word := range roleWords {
			if strings.Contains(lower, word) {
				return line
			}
		}
	}

	if title, ok := titleLabelRule.Find(text); ok {
		return strings.TrimSpace(title)
	}
	return types.NoJobTitle
}

func extractRequiredSkills(text string) []string {
	var raw []string
	for _, body := range requiredSectionRules.All(text) {
		raw = append(raw, parseSkillList(strings.TrimSpace(body))...)
	}
	for _, pattern := range skillMentionPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			raw = append(raw, strings.TrimSpace(m[len(m)-1]))
		}
	}
	return titleDedupe(raw)
}

func extractPreferredSkills(text string) []string {
	var raw []string
	for _, body := range preferredSectionRules.All(text) {
		raw = append(raw, parseSkillList(strings.TrimSpace(body))...)
	}
	return titleDedupe(raw)
}

func extractResponsibilities(text string) []string {
	items := []string{}
	for _, body := range responsibilitiesRules.All(text) {
		for _, item := range itemSeparator.Split(strings.TrimSpace(body), -1) {
			item = strings.TrimSpace(item)
			if len(item) > 10 {
				items = append(items, item)
			}
		}
	}
	return items
}

func extractQualifications(text string) []string {
	items := []string{}
	for _, body := range qualificationsRules.All(text) {
		body = strings.TrimSpace(body)
		if len(body) > 5 {
			items = append(items, body)
		}
	}
	return items
}

func extractBenefits(text string) []string {
	items := []string{}
	for _, body := range benefitsRules.All(text) {
		body = strings.TrimSpace(body)
		if len(body) > 5 {
			items = append(items, body)
		}
	}
	return items
}

func extractJobType(text string) string {
	lower := strings.ToLower(text)
	for _, jobType := range types.JobTypes {
		if strings.Contains(lower, jobType) {
			return textutil.TitleCase(jobType)
		}
	}
	return types.NotSpecified
}

// extractExperienceLevel normalizes "N+ years of experience" forms to
// "N years" and otherwise reports the qualitative level word found.
func extractExperienceLevel(text string) string {
	if m := yearsExpPattern.FindStringSubmatch(text); m != nil {
		return m[1] + " years"
	}
	if m := levelWordPattern.FindString(text); m != "" {
		return strings.ToLower(m)
	}
	if m := minimumYearsPattern.FindStringSubmatch(text); m != nil {
		return m[1] + " years"
	}
	return types.NotSpecified
}

// extractKeyRequirements pulls the bulleted items under the requirements
// heading, capped at ten.
func extractKeyRequirements(text string) []string {
	items := []string{}
	if !strings.Contains(strings.ToLower(text), "requirements") {
		return items
	}
	m := requirementsSectionPattern.FindStringSubmatch(text)
	if m == nil {
		return items
	}
	for _, bullet := range bulletPattern.FindAllStringSubmatch(m[1], -1) {
		item := strings.TrimSpace(bullet[1])
		if len(item) > 10 {
			items = append(items, item)
		}
		if len(items) == 10 {
			break
		}
	}
	return items
}

// parseSkillList splits a section body on list separators and filters out
// requirement boilerplate and implausible entries.
func parseSkillList(body string) []string {
	var skills []string
	for _, candidate := range skillSeparator.Split(body, -1) {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" || len(candidate) <= 2 || len(candidate) >= 50 {
			continue
		}
		if isAllDigits(candidate) || containsSkipPhrase(candidate) {
			continue
		}
		skills = append(skills, candidate)
	}
	return skills
}

func containsSkipPhrase(skill string) bool {
	lower := strings.ToLower(skill)
	for _, phrase := range skillSkipPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// titleDedupe title-cases skills and deduplicates them case
// insensitively, preserving first-seen order.
func titleDedupe(skills []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, skill := range skills {
		if strings.TrimSpace(skill) == "" {
			continue
		}
		out = textutil.DedupeFold(out, seen, textutil.TitleCase(skill))
	}
	return out
}
