package jobposting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/coverletter-agent/internal/types"
)

const sampleJob = `Senior Backend Engineer
Company: Initech Corp

About Us:
We build workflow tools for large enterprises.

Responsibilities:
- Design and operate backend services at scale
- Mentor other engineers on the team

Requirements:
- 5+ years of experience with Python
- Docker
- Kubernetes

Benefits:
We offer health insurance and remote work options.
This is a full-time position.
`

func TestAnalyzeTitle(t *testing.T) {
	profile := Analyze(sampleJob)
	assert.Equal(t, "Senior Backend Engineer", profile.Title)
}

func TestAnalyzeTitleLabelFallback(t *testing.T) {
	profile := Analyze("Some generic opener line.\n\nPosition: Data Wrangler\n")
	assert.Equal(t, "Data Wrangler", profile.Title)
}

func TestAnalyzeTitleMissing(t *testing.T) {
	profile := Analyze("We are hiring somebody.\n")
	assert.Equal(t, types.NoJobTitle, profile.Title)
}

func TestAnalyzeCompany(t *testing.T) {
	profile := Analyze(sampleJob)
	assert.Equal(t, "Initech Corp", profile.Company.Name)
	assert.Equal(t, "We build workflow tools for large enterprises.", profile.Company.Description)
}

func TestAnalyzeCompanyOpener(t *testing.T) {
	profile := Analyze("Globex is a logistics organization serving three continents.\n")
	assert.Equal(t, "Globex", profile.Company.Name)
	assert.Contains(t, profile.Company.Description, "logistics organization")
}

func TestAnalyzeRequiredSkills(t *testing.T) {
	profile := Analyze(sampleJob)

	assert.Contains(t, profile.RequiredSkills, "Docker")
	assert.Contains(t, profile.RequiredSkills, "Kubernetes")
	assert.Contains(t, profile.RequiredSkills, "Python")
	// Boilerplate lines never surface as skills.
	for _, skill := range profile.RequiredSkills {
		assert.NotContains(t, skill, "Years")
	}
}

func TestAnalyzePreferredSkills(t *testing.T) {
	text := "Engineer wanted.\n\nPreferred:\nTerraform, Grafana\n\nOther text.\n"
	profile := Analyze(text)
	assert.Equal(t, []string{"Terraform", "Grafana"}, profile.PreferredSkills)
}

func TestAnalyzeResponsibilities(t *testing.T) {
	profile := Analyze(sampleJob)

	require.Len(t, profile.Responsibilities, 2)
	assert.Equal(t, "Design and operate backend services at scale", profile.Responsibilities[0])
	assert.Equal(t, "Mentor other engineers on the team", profile.Responsibilities[1])
}

func TestAnalyzeBenefits(t *testing.T) {
	profile := Analyze(sampleJob)

	require.NotEmpty(t, profile.Benefits)
	assert.Contains(t, profile.Benefits[0], "health insurance")
}

func TestAnalyzeJobType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"Full time", sampleJob, "Full-Time"},
		{"Contract", "This is a contract engagement.", "Contract"},
		{"Unstated", "We are hiring.", types.NotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.text).JobType)
		})
	}
}

func TestAnalyzeExperienceLevel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"Plus years normalized", "5+ years of experience with Go", "5 years"},
		{"Plain years", "3 years experience in support", "3 years"},
		{"Qualitative", "We want a senior person.", "senior"},
		{"Minimum years", "Minimum 4 years in the field", "4 years"},
		{"Unstated", "Join our team.", types.NotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.text).ExperienceLevel)
		})
	}
}

func TestAnalyzeKeyRequirements(t *testing.T) {
	profile := Analyze(sampleJob)

	require.Len(t, profile.KeyRequirements, 1)
	assert.Equal(t, "5+ years of experience with Python", profile.KeyRequirements[0])
}

func TestAnalyzeKeyRequirementsCap(t *testing.T) {
	text := "Requirements:\n"
	for i := 0; i < 15; i++ {
		text += "- a requirement line with enough words to count\n"
	}
	profile := Analyze(text)
	assert.Len(t, profile.KeyRequirements, 10)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	profile := Analyze("")

	assert.Equal(t, types.NoJobTitle, profile.Title)
	assert.Equal(t, types.NotSpecified, profile.JobType)
	assert.Equal(t, types.NotSpecified, profile.ExperienceLevel)
	assert.Empty(t, profile.RequiredSkills)
	assert.Empty(t, profile.Responsibilities)
	assert.Empty(t, profile.KeyRequirements)
}
