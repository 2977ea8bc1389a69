// Package types provides type definitions for structured data used throughout the coverletter-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Sentinel values used when a field cannot be extracted. Extraction never
// fails; absent signal is represented by these placeholders instead.
const (
	// NotSpecified marks a field with no extractable value
	NotSpecified = "Not specified"
	// NoSummary marks a resume with no usable summary section
	NoSummary = "No summary available"
	// NoJobTitle marks a job posting with no recognizable title
	NoJobTitle = "Position title not specified"
)

// ContactInfo holds contact details extracted from a resume.
// An empty string means the field was not found; at most one value per
// field is kept (first match wins).
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry represents one job held by the candidate, in document order
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// EducationEntry represents one degree or certificate.
// Institution defaults to NotSpecified when absent.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
}

// Project represents one project listed on a resume. Name is a display
// label capped at 50 characters; Description carries the full line.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ResumeProfile is the structured representation of a free-form resume.
// It is immutable once produced and safe to share across goroutines.
type ResumeProfile struct {
	Contact    ContactInfo       `json:"contact_info"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Summary    string            `json:"summary"`
	Projects   []Project         `json:"projects"`
}

// EmptyResumeProfile returns a profile with every field set to its defined
// empty or sentinel value. This is what extraction yields on degenerate input.
func EmptyResumeProfile() *ResumeProfile {
	return &ResumeProfile{
		Skills:     []string{},
		Experience: []ExperienceEntry{},
		Education:  []EducationEntry{},
		Summary:    NoSummary,
		Projects:   []Project{},
	}
}
