package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/coverletter-agent/internal/ingestion"
	"github.com/jonathan/coverletter-agent/internal/jobposting"
	"github.com/jonathan/coverletter-agent/internal/resume"
	"github.com/jonathan/coverletter-agent/internal/textutil"
	"github.com/jonathan/coverletter-agent/internal/types"
	"github.com/jonathan/coverletter-agent/internal/validation"
)

const summaryPreviewChars = 200

// resumeSummary condenses a parsed resume for the generation response.
type resumeSummary struct {
	ContactInfo     types.ContactInfo `json:"contact_info"`
	SkillsCount     int               `json:"skills_count"`
	ExperienceCount int               `json:"experience_count"`
	EducationCount  int               `json:"education_count"`
	Summary         string            `json:"summary"`
}

// jobSummary condenses an analyzed posting for the generation response.
type jobSummary struct {
	JobTitle            string `json:"job_title"`
	CompanyName         string `json:"company_name"`
	RequiredSkillsCount int    `json:"required_skills_count"`
	JobType             string `json:"job_type"`
	ExperienceLevel     string `json:"experience_level"`
}

// skillsAnalysis pairs the match report with per-skill priorities.
type skillsAnalysis struct {
	*types.MatchReport
	SkillPriorities []types.SkillPriority `json:"skill_priorities,omitempty"`
}

type analyzeSkillsRequest struct {
	ResumeSkills    []string `json:"resume_skills" validate:"required"`
	JobRequirements []string `json:"job_requirements" validate:"required"`
}

type analyzeJobRequest struct {
	JobDescription string `json:"job_description" validate:"required_without=JobURL"`
	JobURL         string `json:"job_url" validate:"omitempty,url"`
	UseBrowser     bool   `json:"use_browser"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.errorResponse(w, http.StatusNotFound, "not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "AI Cover Letter Generator API is running",
		"version":   "1.0.0",
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	provider := "fallback"
	if s.client != nil {
		provider = s.client.Model()
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":    true,
		"api_status": "operational",
		"components": map[string]string{
			"ingestion":     "ready",
			"resume_parser": "ready",
			"job_analyzer":  "ready",
			"generator":     "ready",
			"matcher":       "ready",
		},
		"provider": provider,
	})
}

func (s *Server) handleGenerateCoverLetter(w http.ResponseWriter, r *http.Request) {
	resumeText, ok := s.readResumeUpload(w, r)
	if !ok {
		return
	}

	jobText := r.FormValue("job_description")
	if jobText == "" {
		if jobURL := r.FormValue("job_url"); jobURL != "" {
			fetched, err := ingestion.IngestFromURL(r.Context(), jobURL, true, s.logger)
			if err != nil {
				s.logger.Warn("job posting fetch failed", zap.Error(err))
				s.errorResponse(w, HTTPStatus(err), "failed to fetch job posting: "+err.Error())
				return
			}
			jobText = fetched
		}
	}
	if err := validation.JobDescription(jobText); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	profile := resume.Extract(resumeText)
	job := jobposting.Analyze(jobText)

	style := types.ParseStyle(r.FormValue("template_style"))
	customMessage := r.FormValue("custom_message")

	ctx, cancel := contextWithTimeout(r, s.cfg.ProviderTimeout)
	defer cancel()

	result := s.generator.Generate(ctx, profile, job, style, customMessage)
	if !result.Success {
		s.errorResponse(w, http.StatusInternalServerError, result.Error)
		return
	}

	report := s.matcher.Match(profile.Skills, job.RequiredSkills)
	priorities := s.matcher.RankPriorities(job.RequiredSkills, jobText)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":      true,
		"cover_letter": result.Letter,
		"analysis": map[string]any{
			"resume_data": resumeSummary{
				ContactInfo:     profile.Contact,
				SkillsCount:     len(profile.Skills),
				ExperienceCount: len(profile.Experience),
				EducationCount:  len(profile.Education),
				Summary:         textutil.Truncate(profile.Summary, summaryPreviewChars),
			},
			"job_data": jobSummary{
				JobTitle:            job.Title,
				CompanyName:         job.Company.Name,
				RequiredSkillsCount: len(job.RequiredSkills),
				JobType:             job.JobType,
				ExperienceLevel:     job.ExperienceLevel,
			},
			"skills_matching": skillsAnalysis{
				MatchReport:     report,
				SkillPriorities: priorities,
			},
		},
		"metadata": map[string]any{
			"template_used":        result.TemplateUsed,
			"word_count":           result.WordCount,
			"generation_timestamp": time.Now().UTC().Format(time.RFC3339),
			"recommendations":      result.Recommendations,
		},
	})
}

func (s *Server) handleAnalyzeSkills(w http.ResponseWriter, r *http.Request) {
	var req analyzeSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume_skills and job_requirements are required")
		return
	}

	report := s.matcher.Match(req.ResumeSkills, req.JobRequirements)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":         true,
		"skills_analysis": report,
	})
}

func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	resumeText, ok := s.readResumeUpload(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":     true,
		"resume_data": resume.Extract(resumeText),
	})
}

func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var req analyzeJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "job_description or job_url is required")
		return
	}

	jobText := req.JobDescription
	if jobText == "" {
		fetched, err := ingestion.IngestFromURL(r.Context(), req.JobURL, req.UseBrowser, s.logger)
		if err != nil {
			s.logger.Warn("job posting fetch failed", zap.Error(err))
			s.errorResponse(w, HTTPStatus(err), "failed to fetch job posting: "+err.Error())
			return
		}
		jobText = fetched
	}
	if err := validation.JobDescription(jobText); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":  true,
		"job_data": jobposting.Analyze(jobText),
	})
}

func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"templates": map[string]map[string]string{
			"professional": {
				"name":        "Professional",
				"description": "Traditional, formal cover letter suitable for corporate environments",
				"best_for":    "Corporate positions, traditional industries, formal applications",
			},
			"creative": {
				"name":        "Creative",
				"description": "Engaging and creative tone while maintaining professionalism",
				"best_for":    "Creative industries, startups, marketing roles",
			},
			"technical": {
				"name":        "Technical",
				"description": "Focuses on technical skills and achievements",
				"best_for":    "Software development, engineering, technical roles",
			},
			"entry_level": {
				"name":        "Entry Level",
				"description": "Emphasizes potential, education, and eagerness to learn",
				"best_for":    "Recent graduates, career changers, first-time job seekers",
			},
		},
	})
}

// readResumeUpload pulls the "resume" file out of a multipart request,
// saves it to a temporary directory, and returns its validated text. On
// failure it writes the error response and returns ok false.
func (s *Server) readResumeUpload(w http.ResponseWriter, r *http.Request) (string, bool) {
	if err := r.ParseMultipartForm(s.cfg.MaxFileSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return "", false
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "no resume file provided")
		return "", false
	}
	defer file.Close()

	if header.Filename == "" || !ingestion.Supported(header.Filename) {
		s.errorResponse(w, http.StatusBadRequest, "unsupported file format, use PDF, DOCX, DOC or TXT")
		return "", false
	}
	if err := validation.FileSize(header.Size, s.cfg.MaxFileSize); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return "", false
	}

	tempDir, err := os.MkdirTemp("", "coverletter-upload-")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to store upload")
		return "", false
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, filepath.Base(header.Filename))
	dst, err := os.Create(path)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to store upload")
		return "", false
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		s.errorResponse(w, http.StatusInternalServerError, "failed to store upload")
		return "", false
	}
	dst.Close()

	text, err := ingestion.ExtractFile(path)
	if err != nil {
		s.logger.Warn("text extraction failed", zap.String("file", header.Filename), zap.Error(err))
		s.errorResponse(w, http.StatusBadRequest, "failed to extract text from resume file")
		return "", false
	}
	if err := validation.ResumeText(text); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return "", false
	}
	return text, true
}

func contextWithTimeout(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), timeout)
}
