package letter

import (
	"fmt"
	"strings"

	"github.com/jonathan/coverletter-agent/internal/textutil"
	"github.com/jonathan/coverletter-agent/internal/types"
)

// Prompt budgets keep the request compact regardless of input size.
const (
	maxPromptSkills           = 8
	maxPromptExperience       = 3
	maxPromptProjects         = 3
	maxPromptResponsibilities = 5
	maxExperienceDescChars    = 100
	maxProjectDescChars       = 80
)

// buildPrompt renders the provider prompt for the requested style.
func buildPrompt(style types.Style, profile *types.ResumeProfile, job *types.JobProfile, customMessage string) string {
	switch style {
	case types.StyleCreative:
		return creativePrompt(profile, job, customMessage)
	case types.StyleTechnical:
		return technicalPrompt(profile, job, customMessage)
	case types.StyleEntryLevel:
		return entryLevelPrompt(profile, job, customMessage)
	default:
		return professionalPrompt(profile, job, customMessage)
	}
}

func professionalPrompt(profile *types.ResumeProfile, job *types.JobProfile, customMessage string) string {
	name := orDefault(profile.Contact.Name, "Applicant")
	title := jobTitleOrDefault(job, "the position")
	company := orDefault(job.Company.Name, "your company")

	var b strings.Builder
	fmt.Fprintf(&b, "Create a professional cover letter for %s applying for the %s position at %s.\n\n", name, title, company)
	b.WriteString("RESUME INFORMATION:\n")
	fmt.Fprintf(&b, "- Skills: %s\n", strings.Join(topN(profile.Skills, maxPromptSkills), ", "))
	fmt.Fprintf(&b, "- Experience: %s\n", formatExperience(profile.Experience))
	fmt.Fprintf(&b, "- Summary: %s\n\n", orDefault(profile.Summary, "Experienced professional"))
	b.WriteString("JOB REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- Required Skills: %s\n", strings.Join(job.RequiredSkills, ", "))
	fmt.Fprintf(&b, "- Key Responsibilities: %s\n", strings.Join(topN(job.Responsibilities, maxPromptResponsibilities), "; "))
	fmt.Fprintf(&b, "- Company: %s\n", orDefault(job.Company.Description, "A leading company"))
	writeCustomMessage(&b, "CUSTOM MESSAGE TO INCLUDE", customMessage)
	b.WriteString(`
INSTRUCTIONS:
1. Write a professional, engaging cover letter
2. Highlight relevant skills that match job requirements
3. Show enthusiasm for the role and company
4. Include specific examples from experience when possible
5. Keep it concise (3-4 paragraphs)
6. Use professional tone throughout
7. End with a strong call to action

FORMAT:
- Start with proper greeting
- Include date and company address if company name is provided
- 3-4 well-structured paragraphs
- Professional closing

Generate the cover letter now:
`)
	return b.String()
}

func creativePrompt(profile *types.ResumeProfile, job *types.JobProfile, customMessage string) string {
	name := orDefault(profile.Contact.Name, "Creative Professional")
	title := jobTitleOrDefault(job, "the position")
	company := orDefault(job.Company.Name, "your innovative company")

	var b strings.Builder
	fmt.Fprintf(&b, "Create a creative and engaging cover letter for %s applying for the %s position at %s.\n\n", name, title, company)
	b.WriteString("RESUME INFORMATION:\n")
	fmt.Fprintf(&b, "- Skills: %s\n", strings.Join(topN(profile.Skills, maxPromptSkills), ", "))
	fmt.Fprintf(&b, "- Projects: %s\n", formatProjects(profile.Projects))
	fmt.Fprintf(&b, "- Experience: %s\n\n", formatExperience(profile.Experience))
	b.WriteString("JOB INFORMATION:\n")
	fmt.Fprintf(&b, "- Position: %s\n", title)
	fmt.Fprintf(&b, "- Company: %s\n", company)
	fmt.Fprintf(&b, "- Required Skills: %s\n", strings.Join(job.RequiredSkills, ", "))
	writeCustomMessage(&b, "CUSTOM MESSAGE", customMessage)
	b.WriteString(`
INSTRUCTIONS:
1. Use a creative, engaging tone while remaining professional
2. Start with an attention-grabbing opening
3. Tell a compelling story about relevant experience
4. Show personality and passion for the field
5. Demonstrate creativity in presentation
6. Keep it engaging but concise
7. End with memorable closing

Generate a creative cover letter now:
`)
	return b.String()
}

func technicalPrompt(profile *types.ResumeProfile, job *types.JobProfile, customMessage string) string {
	title := jobTitleOrDefault(job, "technical position")
	company := orDefault(job.Company.Name, "the company")

	var b strings.Builder
	fmt.Fprintf(&b, "Create a technical cover letter for a %s at %s.\n\n", title, company)
	b.WriteString("TECHNICAL BACKGROUND:\n")
	fmt.Fprintf(&b, "- Technical Skills: %s\n", strings.Join(filterTechnicalSkills(profile.Skills), ", "))
	fmt.Fprintf(&b, "- All Skills: %s\n", strings.Join(profile.Skills, ", "))
	fmt.Fprintf(&b, "- Experience: %s\n", formatExperience(profile.Experience))
	fmt.Fprintf(&b, "- Projects: %s\n\n", formatProjects(profile.Projects))
	b.WriteString("JOB REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- Required Technical Skills: %s\n", strings.Join(job.RequiredSkills, ", "))
	fmt.Fprintf(&b, "- Responsibilities: %s\n", strings.Join(topN(job.Responsibilities, maxPromptResponsibilities), "; "))
	writeCustomMessage(&b, "ADDITIONAL CONTEXT", customMessage)
	b.WriteString(`
INSTRUCTIONS:
1. Focus on technical qualifications and achievements
2. Mention specific technologies and frameworks
3. Include quantifiable results where possible
4. Demonstrate problem-solving abilities
5. Show understanding of technical challenges
6. Keep professional but show technical depth
7. Highlight relevant projects or implementations

Generate a technical cover letter now:
`)
	return b.String()
}

func entryLevelPrompt(profile *types.ResumeProfile, job *types.JobProfile, customMessage string) string {
	title := jobTitleOrDefault(job, "the position")
	company := orDefault(job.Company.Name, "the company")

	var b strings.Builder
	fmt.Fprintf(&b, "Create an entry-level cover letter for someone applying for %s at %s.\n\n", title, company)
	b.WriteString("CANDIDATE BACKGROUND:\n")
	fmt.Fprintf(&b, "- Education: %s\n", formatEducation(profile.Education))
	fmt.Fprintf(&b, "- Skills: %s\n", strings.Join(profile.Skills, ", "))
	fmt.Fprintf(&b, "- Projects: %s\n", formatProjects(profile.Projects))
	fmt.Fprintf(&b, "- Experience: %s\n\n", formatExperience(profile.Experience))
	b.WriteString("JOB INFORMATION:\n")
	fmt.Fprintf(&b, "- Position: %s\n", title)
	fmt.Fprintf(&b, "- Required Skills: %s\n", strings.Join(job.RequiredSkills, ", "))
	fmt.Fprintf(&b, "- Company: %s\n", company)
	writeCustomMessage(&b, "PERSONAL MESSAGE", customMessage)
	b.WriteString(`
INSTRUCTIONS:
1. Emphasize eagerness to learn and grow
2. Highlight relevant coursework and projects
3. Show enthusiasm and passion for the field
4. Demonstrate quick learning ability
5. Mention any internships or relevant experience
6. Focus on potential and transferable skills
7. Show research about the company

Generate an entry-level cover letter now:
`)
	return b.String()
}

// technicalSkillMarkers identify resume skills to surface in the
// technical prompt.
var technicalSkillMarkers = []string{
	"python", "java", "javascript", "sql", "aws", "docker", "react", "angular", "node",
}

func filterTechnicalSkills(skills []string) []string {
	var technical []string
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, marker := range technicalSkillMarkers {
			if strings.Contains(lower, marker) {
				technical = append(technical, skill)
				break
			}
		}
	}
	return technical
}

func formatExperience(experience []types.ExperienceEntry) string {
	if len(experience) == 0 {
		return "No professional experience listed"
	}
	var formatted []string
	for _, exp := range experience[:min(len(experience), maxPromptExperience)] {
		desc := textutil.Truncate(orDefault(exp.Description, "Professional experience"), maxExperienceDescChars)
		formatted = append(formatted, fmt.Sprintf("%s at %s: %s", exp.Title, exp.Company, desc))
	}
	return strings.Join(formatted, "; ")
}

func formatProjects(projects []types.Project) string {
	if len(projects) == 0 {
		return "No projects listed"
	}
	var formatted []string
	for _, project := range projects[:min(len(projects), maxPromptProjects)] {
		desc := textutil.Truncate(orDefault(project.Description, "Project work"), maxProjectDescChars)
		formatted = append(formatted, fmt.Sprintf("%s: %s", project.Name, desc))
	}
	return strings.Join(formatted, "; ")
}

func formatEducation(education []types.EducationEntry) string {
	if len(education) == 0 {
		return "Education information not specified"
	}
	var formatted []string
	for _, edu := range education {
		formatted = append(formatted, fmt.Sprintf("%s from %s", edu.Degree, edu.Institution))
	}
	return strings.Join(formatted, "; ")
}

func writeCustomMessage(b *strings.Builder, label, message string) {
	if strings.TrimSpace(message) != "" {
		fmt.Fprintf(b, "\n%s: %s\n", label, message)
	}
}

func topN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// jobTitleOrDefault treats the analyzer's sentinel title like a missing
// value so prompts read naturally.
func jobTitleOrDefault(job *types.JobProfile, fallback string) string {
	if job.Title == "" || job.Title == types.NoJobTitle {
		return fallback
	}
	return job.Title
}
