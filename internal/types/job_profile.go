package types

// JobTypes is the closed set of recognized employment types, in scan order.
// A posting matching none of them gets NotSpecified.
var JobTypes = []string{
	"full-time", "part-time", "contract", "freelance", "temporary", "internship", "remote",
}

// CompanyInfo holds company details extracted from a job posting.
// Empty strings mean the field was not found.
type CompanyInfo struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Industry    string `json:"industry,omitempty"`
}

// JobProfile is the structured representation of a free-form job posting.
// Like ResumeProfile it is total: analysis always succeeds structurally,
// unpopulated fields carry their empty or sentinel values.
type JobProfile struct {
	Company          CompanyInfo `json:"company_info"`
	Title            string      `json:"job_title"`
	RequiredSkills   []string    `json:"required_skills"`
	PreferredSkills  []string    `json:"preferred_skills"`
	Responsibilities []string    `json:"responsibilities"`
	Qualifications   []string    `json:"qualifications"`
	Benefits         []string    `json:"benefits"`
	JobType          string      `json:"job_type"`
	ExperienceLevel  string      `json:"experience_level"`
	KeyRequirements  []string    `json:"key_requirements"`
}

// EmptyJobProfile returns a profile with every field set to its defined
// empty or sentinel value.
func EmptyJobProfile() *JobProfile {
	return &JobProfile{
		Title:            NoJobTitle,
		RequiredSkills:   []string{},
		PreferredSkills:  []string{},
		Responsibilities: []string{},
		Qualifications:   []string{},
		Benefits:         []string{},
		JobType:          NotSpecified,
		ExperienceLevel:  NotSpecified,
		KeyRequirements:  []string{},
	}
}
