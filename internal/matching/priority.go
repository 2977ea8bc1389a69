package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/coverletter-agent/internal/types"
)

var requiredMarkers = []string{"required", "essential", "must", "critical"}

// RankPriorities scores each skill by how prominently the posting
// emphasizes it and returns the skills in descending priority order.
// Mentions, early placement, and requirement markers each contribute
// per the configured weights; ties keep input order.
func (m *Matcher) RankPriorities(skills []string, postingText string) []types.SkillPriority {
	lower := strings.ToLower(postingText)
	window := m.cfg.EarlyWindow
	if window > len(lower) {
		window = len(lower)
	}
	early := lower[:window]

	priorities := make([]types.SkillPriority, 0, len(skills))
	for _, skill := range dedupeRequired(skills) {
		score := strings.Count(lower, skill.folded) * m.cfg.MentionWeight
		if strings.Contains(early, skill.folded) {
			score += m.cfg.EarlyMentionWeight
		}
		if m.nearRequiredMarker(lower, skill.folded) {
			score += m.cfg.RequiredMarkerWeight
		}
		priorities = append(priorities, types.SkillPriority{
			Skill: skill.display,
			Score: score,
		})
	}

	sort.SliceStable(priorities, func(i, j int) bool {
		return priorities[i].Score > priorities[j].Score
	})
	return priorities
}

// nearRequiredMarker reports whether any line mentions the skill together
// with a requirement marker word.
func (m *Matcher) nearRequiredMarker(lowerText, skill string) bool {
	for _, line := range strings.Split(lowerText, "\n") {
		if !strings.Contains(line, skill) {
			continue
		}
		for _, marker := range requiredMarkers {
			if strings.Contains(line, marker) {
				return true
			}
		}
	}
	return false
}
