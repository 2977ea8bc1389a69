package types

// MatchReport is the result of comparing candidate skills against the
// required skills of a job posting. It is computed fresh per request.
//
// Invariants: MatchedSkills and MissingSkills partition the required-skill
// list (preserving its order and original casing), and MatchScorePercent is
// round(100 * TotalMatched / TotalRequired, 1), or 0 when nothing is required.
type MatchReport struct {
	MatchScorePercent float64  `json:"match_score"`
	MatchedSkills     []string `json:"matching_skills"`
	MissingSkills     []string `json:"missing_skills"`
	TotalRequired     int      `json:"total_required"`
	TotalMatched      int      `json:"total_matched"`
	TechnicalSkills   []string `json:"technical_skills"`
	SoftSkills        []string `json:"soft_skills"`
	Recommendations   []string `json:"recommendations"`
}

// SkillPriority pairs a required skill with its importance score derived
// from how prominently the job posting mentions it.
type SkillPriority struct {
	Skill string `json:"skill"`
	Score int    `json:"priority_score"`
}
