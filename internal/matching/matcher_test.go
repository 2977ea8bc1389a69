package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchScore(t *testing.T) {
	m := New(nil, DefaultConfig())

	tests := []struct {
		name           string
		resumeSkills   []string
		requiredSkills []string
		wantScore      float64
		wantMatched    []string
		wantMissing    []string
	}{
		{
			name:           "Two of three matched",
			resumeSkills:   []string{"Python", "SQL"},
			requiredSkills: []string{"Python", "AWS", "SQL"},
			wantScore:      66.7,
			wantMatched:    []string{"Python", "SQL"},
			wantMissing:    []string{"AWS"},
		},
		{
			name:           "Requirement casing preserved",
			resumeSkills:   []string{"Go", "Docker"},
			requiredSkills: []string{"go", "docker"},
			wantScore:      100,
			wantMatched:    []string{"go", "docker"},
			wantMissing:    []string{},
		},
		{
			name:           "Sibling synonyms match",
			resumeSkills:   []string{"ai"},
			requiredSkills: []string{"ml"},
			wantScore:      100,
			wantMatched:    []string{"ml"},
			wantMissing:    []string{},
		},
		{
			name:           "None matched",
			resumeSkills:   []string{"Cooking"},
			requiredSkills: []string{"Rust", "Erlang"},
			wantScore:      0,
			wantMatched:    []string{},
			wantMissing:    []string{"Rust", "Erlang"},
		},
		{
			name:           "Empty required skills",
			resumeSkills:   []string{"Python"},
			requiredSkills: []string{},
			wantScore:      0,
			wantMatched:    []string{},
			wantMissing:    []string{},
		},
		{
			name:           "Duplicate requirements collapse",
			resumeSkills:   []string{"Python"},
			requiredSkills: []string{"Python", "python", "PYTHON"},
			wantScore:      100,
			wantMatched:    []string{"Python"},
			wantMissing:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := m.Match(tt.resumeSkills, tt.requiredSkills)
			assert.InDelta(t, tt.wantScore, report.MatchScorePercent, 0.001)
			assert.Equal(t, tt.wantMatched, report.MatchedSkills)
			assert.Equal(t, tt.wantMissing, report.MissingSkills)
			assert.Equal(t, report.TotalMatched, len(report.MatchedSkills))
			assert.Equal(t, report.TotalRequired, len(report.MatchedSkills)+len(report.MissingSkills))
		})
	}
}

func TestSkillsEqual(t *testing.T) {
	m := New(nil, DefaultConfig())

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"Exact", "python", "python", true},
		{"Synonym js for javascript", "js", "javascript", true},
		{"Synonym symmetric", "javascript", "js", true},
		{"Synonym ml for machine learning", "machine learning", "ai", true},
		{"Sibling synonyms of one canonical", "ml", "ai", true},
		{"Sibling synonyms symmetric", "nodejs", "js", true},
		{"Fuzzy spacing variant", "postgre sql", "postgresql", true},
		{"Substring java in javascript", "java", "javascript", true},
		{"Unrelated", "cooking", "kubernetes", false},
		{"Below fuzzy threshold", "go", "rust", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.skillsEqual(tt.a, tt.b))
		})
	}
}

func TestMatchClassification(t *testing.T) {
	m := New(nil, DefaultConfig())

	report := m.Match(
		[]string{"Python", "Communication", "Basket Weaving"},
		[]string{"Python", "Communication", "Basket Weaving"},
	)
	assert.Equal(t, []string{"Python"}, report.TechnicalSkills)
	assert.Equal(t, []string{"Communication"}, report.SoftSkills)
	// Skills that are neither technical nor soft still count as matched.
	assert.Contains(t, report.MatchedSkills, "Basket Weaving")
}

func TestMatchRecommendations(t *testing.T) {
	m := New(nil, DefaultConfig())

	t.Run("Low score", func(t *testing.T) {
		report := m.Match([]string{}, []string{"Rust", "Erlang", "Haskell"})
		require.NotEmpty(t, report.Recommendations)
		assert.Equal(t, "Consider gaining more of the required skills before applying", report.Recommendations[0])
		assert.Contains(t, report.Recommendations[1], "Consider learning: Rust, Erlang, Haskell")
	})

	t.Run("Mid score", func(t *testing.T) {
		report := m.Match([]string{"Python"}, []string{"Python", "Rust"})
		assert.Equal(t, "You have some matching skills. Consider highlighting transferable experience", report.Recommendations[0])
	})

	t.Run("Full score", func(t *testing.T) {
		report := m.Match([]string{"Python"}, []string{"Python"})
		assert.Contains(t, report.Recommendations, "Strong skill match! Emphasize your relevant experience")
		assert.Contains(t, report.Recommendations, "Excellent match! You're well-qualified for this position")
	})

	t.Run("Missing capped at three", func(t *testing.T) {
		report := m.Match(nil, []string{"A1", "B2", "C3", "D4"})
		assert.Contains(t, report.Recommendations, "Consider learning: A1, B2, C3")
	})
}

func TestRankPriorities(t *testing.T) {
	m := New(nil, DefaultConfig())

	posting := "Senior engineer role. Python required for all work.\n" +
		"Python services power everything here, and Python is used across the stack " +
		"for data pipelines, batch processing, and the web tier of the platform.\n" +
		"We also use Docker occasionally for local development."
	priorities := m.RankPriorities([]string{"Docker", "Python"}, posting)

	require.Len(t, priorities, 2)
	assert.Equal(t, "Python", priorities[0].Skill)
	assert.Equal(t, "Docker", priorities[1].Skill)
	// Three mentions, early appearance, and a requirement marker.
	assert.Equal(t, 3*10+20+30, priorities[0].Score)
	assert.Equal(t, 10, priorities[1].Score)
}

func TestRankPrioritiesMarkerWords(t *testing.T) {
	m := New(nil, DefaultConfig())

	posting := "A long opening paragraph about the company and its mission, products, " +
		"culture, and growth plans, written to push the skill lines well past the " +
		"early part of the posting before anything concrete is listed here.\n" +
		"Essential: Kubernetes\n" +
		"Nice to have: Terraform"
	priorities := m.RankPriorities([]string{"Kubernetes", "Terraform"}, posting)

	require.Len(t, priorities, 2)
	assert.Equal(t, "Kubernetes", priorities[0].Skill)
	assert.Equal(t, 10+30, priorities[0].Score)
	assert.Equal(t, "Terraform", priorities[1].Skill)
	assert.Equal(t, 10, priorities[1].Score)
}

func TestRankPrioritiesStableTies(t *testing.T) {
	m := New(nil, DefaultConfig())

	priorities := m.RankPriorities([]string{"Zig", "Ada"}, "unrelated posting text")
	require.Len(t, priorities, 2)
	assert.Equal(t, "Zig", priorities[0].Skill)
	assert.Equal(t, "Ada", priorities[1].Skill)
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, similarity("python", "python"), 0.001)
	assert.InDelta(t, 0.909, similarity("postgre sql", "postgresql"), 0.001)
	assert.Less(t, similarity("go", "rust"), 0.8)
}
