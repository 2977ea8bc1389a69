// Package matching compares resume skills against job requirements and
// produces a scored report with per-skill priorities.
package matching

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jonathan/coverletter-agent/internal/types"
)

// Matcher scores resume skills against a posting's required skills.
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	tables *Tables
	cfg    Config
}

// New builds a Matcher. Nil tables fall back to the built-in vocabulary.
func New(tables *Tables, cfg Config) *Matcher {
	if tables == nil {
		tables = DefaultTables()
	}
	if cfg.FuzzyThreshold == 0 {
		cfg = DefaultConfig()
	}
	return &Matcher{tables: tables, cfg: cfg}
}

// Match partitions the posting's required skills into matched and missing
// sets and computes the match score. Required skills are deduplicated
// case-insensitively before matching, so the matched and missing lists
// always partition the deduplicated requirement set. Output keeps the
// casing of each requirement as it was given (first occurrence wins).
func (m *Matcher) Match(resumeSkills, requiredSkills []string) *types.MatchReport {
	required := dedupeRequired(requiredSkills)
	resume := foldAll(resumeSkills)

	report := &types.MatchReport{
		MatchedSkills:   []string{},
		MissingSkills:   []string{},
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
		Recommendations: []string{},
		TotalRequired:   len(required),
	}

	for _, req := range required {
		if m.haveSkill(resume, req.folded) {
			report.MatchedSkills = append(report.MatchedSkills, req.display)
			if m.isTechnical(req.folded) {
				report.TechnicalSkills = append(report.TechnicalSkills, req.display)
			} else if m.isSoft(req.folded) {
				report.SoftSkills = append(report.SoftSkills, req.display)
			}
		} else {
			report.MissingSkills = append(report.MissingSkills, req.display)
		}
	}

	report.TotalMatched = len(report.MatchedSkills)
	if report.TotalRequired > 0 {
		pct := float64(report.TotalMatched) / float64(report.TotalRequired) * 100
		report.MatchScorePercent = math.Round(pct*10) / 10
	}
	report.Recommendations = m.recommendations(report)
	return report
}

func (m *Matcher) haveSkill(resume []string, required string) bool {
	for _, have := range resume {
		if m.skillsEqual(have, required) {
			return true
		}
	}
	return false
}

// skillsEqual reports whether two lower-cased skill names denote the same
// skill: exact match, synonym pair, substring containment, or a fuzzy
// similarity at or above the configured threshold.
func (m *Matcher) skillsEqual(a, b string) bool {
	if a == b {
		return true
	}
	if m.synonyms(a, b) {
		return true
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	return similarity(a, b) >= m.cfg.FuzzyThreshold
}

// synonyms reports whether both names belong to the same synonym group.
// The canonical name counts as a member of its own group, so two
// alternates of the same canonical also match each other.
func (m *Matcher) synonyms(a, b string) bool {
	for canonical, alts := range m.tables.Synonyms {
		if inGroup(canonical, alts, a) && inGroup(canonical, alts, b) {
			return true
		}
	}
	return false
}

func inGroup(canonical string, alts []string, skill string) bool {
	return skill == canonical || contains(alts, skill)
}

func (m *Matcher) isTechnical(skill string) bool {
	for _, kw := range m.tables.TechnicalKeywords {
		if strings.Contains(skill, kw) {
			return true
		}
	}
	for _, name := range m.tables.TechnicalNames {
		if strings.Contains(skill, name) {
			return true
		}
	}
	return false
}

func (m *Matcher) isSoft(skill string) bool {
	for _, kw := range m.tables.SoftKeywords {
		if strings.Contains(skill, kw) {
			return true
		}
	}
	return false
}

func (m *Matcher) recommendations(report *types.MatchReport) []string {
	recs := []string{}
	switch score := report.MatchScorePercent; {
	case score < 30:
		recs = append(recs, "Consider gaining more of the required skills before applying")
	case score < 60:
		recs = append(recs, "You have some matching skills. Consider highlighting transferable experience")
	default:
		recs = append(recs, "Strong skill match! Emphasize your relevant experience")
	}
	if len(report.MissingSkills) > 0 {
		top := report.MissingSkills
		if len(top) > 3 {
			top = top[:3]
		}
		recs = append(recs, "Consider learning: "+strings.Join(top, ", "))
	}
	if report.MatchScorePercent > 80 {
		recs = append(recs, "Excellent match! You're well-qualified for this position")
	}
	return recs
}

// similarity is the normalized Levenshtein ratio in [0, 1].
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// requiredSkill pairs a requirement's original casing with its folded
// form used for comparison.
type requiredSkill struct {
	display string
	folded  string
}

func dedupeRequired(skills []string) []requiredSkill {
	seen := make(map[string]bool, len(skills))
	out := make([]requiredSkill, 0, len(skills))
	for _, s := range skills {
		display := strings.TrimSpace(s)
		folded := strings.ToLower(display)
		if folded == "" || seen[folded] {
			continue
		}
		seen[folded] = true
		out = append(out, requiredSkill{display: display, folded: folded})
	}
	return out
}

func foldAll(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if folded := strings.ToLower(strings.TrimSpace(s)); folded != "" {
			out = append(out, folded)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
