package letter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/coverletter-agent/internal/types"
)

type stubClient struct {
	response string
	err      error
	prompts  []string
}

func (s *stubClient) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) Model() string { return "stub-model" }
func (s *stubClient) Close() error  { return nil }

func testProfile() *types.ResumeProfile {
	profile := types.EmptyResumeProfile()
	profile.Contact.Name = "Ada Lovelace"
	profile.Skills = []string{"Python", "Go", "Docker"}
	profile.Experience = []types.ExperienceEntry{
		{Title: "Software Engineer", Company: "Analytical Engines", Description: "Built computation pipelines"},
	}
	profile.Education = []types.EducationEntry{
		{Degree: "Bachelor in Mathematics", Field: "Mathematics", Institution: "University of London"},
	}
	profile.Summary = "Engineer with a decade of experience in computation."
	return profile
}

func testJob() *types.JobProfile {
	job := types.EmptyJobProfile()
	job.Title = "Backend Engineer"
	job.Company.Name = "Initech"
	job.RequiredSkills = []string{"Python", "Kubernetes"}
	job.Responsibilities = []string{"Build services", "Review code"}
	return job
}

func TestGenerateWithProvider(t *testing.T) {
	client := &stubClient{response: "Dear Hiring Manager,\n\nGenerated letter body.\n\nSincerely,\n[Your Name]"}
	g := New(client, nil)

	result := g.Generate(context.Background(), testProfile(), testJob(), types.StyleProfessional, "")

	require.True(t, result.Success)
	assert.Contains(t, result.Letter, "Generated letter body.")
	// Placeholder tokens get substituted during post-processing.
	assert.Contains(t, result.Letter, "Ada Lovelace")
	assert.NotContains(t, result.Letter, "[Your Name]")
	assert.Equal(t, types.StyleProfessional, result.TemplateUsed)
	assert.Equal(t, len(strings.Fields(result.Letter)), result.WordCount)
}

func TestGenerateFallbackWithoutClient(t *testing.T) {
	g := New(nil, nil)

	result := g.Generate(context.Background(), testProfile(), testJob(), types.StyleProfessional, "")

	require.True(t, result.Success)
	assert.Contains(t, result.Letter, "Dear Hiring Manager,")
	assert.Contains(t, result.Letter, "Backend Engineer")
	assert.Contains(t, result.Letter, "Initech")
	assert.Contains(t, result.Letter, "Ada Lovelace")
	assert.Greater(t, result.WordCount, 0)
}

func TestGenerateFallbackOnProviderError(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	g := New(client, nil)

	result := g.Generate(context.Background(), testProfile(), testJob(), types.StyleCreative, "")

	require.True(t, result.Success)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, result.Letter, "Initech")
	assert.Empty(t, result.Error)
}

func TestGenerateNilProfiles(t *testing.T) {
	g := New(nil, nil)

	result := g.Generate(context.Background(), nil, testJob(), types.StyleProfessional, "")
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)

	result = g.Generate(context.Background(), testProfile(), nil, types.StyleProfessional, "")
	assert.False(t, result.Success)
}

func TestGenerateCustomMessageInFallback(t *testing.T) {
	g := New(nil, nil)

	result := g.Generate(context.Background(), testProfile(), testJob(), types.StyleProfessional, "I am relocating to your city in June.")
	assert.Contains(t, result.Letter, "relocating to your city")
}

func TestGenerateRecommendations(t *testing.T) {
	g := New(nil, nil)

	t.Run("Missing skills listed", func(t *testing.T) {
		result := g.Generate(context.Background(), testProfile(), testJob(), types.StyleProfessional, "")
		assert.Contains(t, result.Recommendations, "Consider highlighting experience with: Kubernetes")
	})

	t.Run("Bare profile", func(t *testing.T) {
		result := g.Generate(context.Background(), types.EmptyResumeProfile(), testJob(), types.StyleProfessional, "")
		assert.Contains(t, result.Recommendations, "Consider adding more specific work experience examples")
		assert.Contains(t, result.Recommendations, "Ensure educational background is clearly stated")
	})
}

func TestBuildPromptBudgets(t *testing.T) {
	profile := testProfile()
	for i := 0; i < 12; i++ {
		profile.Skills = append(profile.Skills, fmt.Sprintf("Skill%d", i))
	}
	job := testJob()
	for i := 0; i < 9; i++ {
		job.Responsibilities = append(job.Responsibilities, fmt.Sprintf("Responsibility number %d", i))
	}

	prompt := buildPrompt(types.StyleProfessional, profile, job, "custom note")

	assert.Contains(t, prompt, "Skill4")
	assert.NotContains(t, prompt, "Skill8")
	assert.Contains(t, prompt, "Responsibility number 2")
	assert.NotContains(t, prompt, "Responsibility number 3")
	assert.Contains(t, prompt, "CUSTOM MESSAGE TO INCLUDE: custom note")
}

func TestBuildPromptStyles(t *testing.T) {
	profile := testProfile()
	job := testJob()

	tests := []struct {
		name  string
		style types.Style
		want  string
	}{
		{"Professional", types.StyleProfessional, "Create a professional cover letter"},
		{"Creative", types.StyleCreative, "Create a creative and engaging cover letter"},
		{"Technical", types.StyleTechnical, "Create a technical cover letter"},
		{"Entry level", types.StyleEntryLevel, "Create an entry-level cover letter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, buildPrompt(tt.style, profile, job, ""), tt.want)
		})
	}
}

func TestTechnicalPromptFiltersSkills(t *testing.T) {
	profile := testProfile()
	profile.Skills = []string{"Python", "Public Speaking", "Docker"}

	prompt := technicalPrompt(profile, testJob(), "")
	assert.Contains(t, prompt, "- Technical Skills: Python, Docker\n")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "No professional experience listed", formatExperience(nil))
	assert.Equal(t, "No projects listed", formatProjects(nil))
	assert.Equal(t, "Education information not specified", formatEducation(nil))

	long := strings.Repeat("x", 150)
	formatted := formatExperience([]types.ExperienceEntry{{Title: "Dev", Company: "Acme", Description: long}})
	assert.Contains(t, formatted, "Dev at Acme: "+strings.Repeat("x", 100)+"...")
}
