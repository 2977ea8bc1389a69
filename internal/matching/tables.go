package matching

// Tables holds the vocabulary the matcher consults. The tables are
// read-only after construction and shared by reference across requests.
type Tables struct {
	// Synonyms maps a canonical skill to its alternate spellings.
	// Lookups are symmetric: either side of a pair may appear in the
	// resume or the posting.
	Synonyms map[string][]string

	// TechnicalKeywords classify a matched skill as technical when the
	// skill contains one of them as a substring.
	TechnicalKeywords []string

	// TechnicalNames are well-known tools and languages that classify a
	// skill as technical on exact match.
	TechnicalNames []string

	// SoftKeywords classify a matched skill as a soft skill.
	SoftKeywords []string
}

// DefaultTables returns the built-in vocabulary. All entries are lower
// case; callers fold input before lookup.
func DefaultTables() *Tables {
	return &Tables{
		Synonyms: map[string][]string{
			"javascript":       {"js", "node.js", "nodejs"},
			"python":           {"py"},
			"machine learning": {"ml", "artificial intelligence", "ai"},
			"user interface":   {"ui", "frontend"},
			"user experience":  {"ux"},
			"database":         {"db", "databases"},
			"sql":              {"mysql", "postgresql", "sqlite"},
			"cloud computing":  {"aws", "azure", "gcp", "cloud"},
			"react":            {"reactjs", "react.js"},
			"angular":          {"angularjs", "angular.js"},
			"vue":              {"vuejs", "vue.js"},
		},
		TechnicalKeywords: []string{
			"programming", "language", "framework", "library", "database",
			"cloud", "devops", "api", "web", "mobile", "software", "system",
			"network", "security", "testing", "deployment", "version control",
		},
		TechnicalNames: []string{
			"python", "java", "javascript", "react", "sql", "aws", "docker",
		},
		SoftKeywords: []string{
			"communication", "leadership", "teamwork", "problem solving",
			"analytical", "creative", "management", "organization",
			"time management", "adaptability", "collaboration",
			"presentation", "negotiation",
		},
	}
}

// Config carries the matcher's tunables. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// FuzzyThreshold is the minimum normalized similarity ratio for two
	// skill names to count as the same skill.
	FuzzyThreshold float64

	// MentionWeight scores each occurrence of a skill in the posting.
	MentionWeight int

	// EarlyMentionWeight is the bonus for a skill appearing within
	// EarlyWindow characters of the start of the posting.
	EarlyMentionWeight int

	// RequiredMarkerWeight is the bonus for a skill named on a line that
	// also carries a requirement marker such as "required" or "must".
	RequiredMarkerWeight int

	// EarlyWindow is the size in bytes of the posting prefix considered
	// an early mention.
	EarlyWindow int
}

// DefaultConfig returns the standard tunables.
func DefaultConfig() Config {
	return Config{
		FuzzyThreshold:       0.8,
		MentionWeight:        10,
		EarlyMentionWeight:   20,
		RequiredMarkerWeight: 30,
		EarlyWindow:          200,
	}
}
