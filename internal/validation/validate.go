package validation

import (
	"regexp"
	"strings"
)

// MaxFileSize is the default upload cap in bytes (16 MB).
const MaxFileSize = 16 << 20

const (
	minResumeChars = 100
	minJobChars    = 50
	minKeywordHits = 3
)

var (
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigitPattern   = regexp.MustCompile(`\D`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	unsafePattern     = regexp.MustCompile(`[<>"']`)
)

// resumeKeywords mark text as plausibly being a resume.
var resumeKeywords = []string{
	"experience", "education", "skills", "work", "university",
	"college", "degree", "project", "achievement", "responsibility",
}

// jobKeywords mark text as plausibly being a job posting.
var jobKeywords = []string{
	"position", "role", "responsibilities", "requirements",
	"experience", "skills", "qualifications", "company",
	"job", "work", "candidate", "team", "project",
}

// ResumeText checks that text is long enough and mentions enough
// resume vocabulary to be worth extracting.
func ResumeText(text string) error {
	if len(strings.TrimSpace(text)) < minResumeChars {
		return &ContentError{Field: "resume", Message: "text too short to be a resume"}
	}
	if keywordHits(text, resumeKeywords) < minKeywordHits {
		return &ContentError{Field: "resume", Message: "text does not look like a resume"}
	}
	return nil
}

// JobDescription checks that text is long enough and mentions enough
// job-posting vocabulary to be worth analyzing.
func JobDescription(text string) error {
	if len(strings.TrimSpace(text)) < minJobChars {
		return &ContentError{Field: "job_description", Message: "text too short to be a job description"}
	}
	if keywordHits(text, jobKeywords) < minKeywordHits {
		return &ContentError{Field: "job_description", Message: "text does not look like a job description"}
	}
	return nil
}

// Email reports whether the address has a plausible format.
func Email(email string) bool {
	return emailPattern.MatchString(email)
}

// Phone reports whether the number has 10 to 15 digits once formatting
// is stripped.
func Phone(phone string) bool {
	digits := nonDigitPattern.ReplaceAllString(phone, "")
	return len(digits) >= 10 && len(digits) <= 15
}

// FileSize checks an upload against the byte cap. A max of zero means
// MaxFileSize.
func FileSize(size, max int64) error {
	if max <= 0 {
		max = MaxFileSize
	}
	if size <= 0 || size > max {
		return &FileSizeError{Size: size, Max: max}
	}
	return nil
}

// SanitizeText collapses whitespace runs and strips characters with HTML
// or quoting significance.
func SanitizeText(text string) string {
	text = whitespacePattern.ReplaceAllString(strings.TrimSpace(text), " ")
	return unsafePattern.ReplaceAllString(text, "")
}

func keywordHits(text string, keywords []string) int {
	lower := strings.ToLower(text)
	hits := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			hits++
		}
	}
	return hits
}
