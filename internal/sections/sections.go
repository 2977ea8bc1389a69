// Package sections locates heading-delimited blocks in free-form documents.
//
// Resumes and job postings have no fixed schema, so each extractor carries
// an ordered table of named rules. A rule is a compiled pattern whose first
// capture group is the section body; rules are tried in order and each is
// unit-testable on its own against sample documents.
package sections

import "regexp"

// Rule is one named section-location attempt. Pattern's first capture
// group, when present, is the section body; patterns without a capture
// group yield the whole match.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Find returns the section body for the rule, or ("", false) when the
// document does not contain the section.
func (r Rule) Find(text string) (string, bool) {
	m := r.Pattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	if len(m) > 1 {
		return m[1], true
	}
	return m[0], true
}

// FindAll returns every body matched by the rule, in document order.
func (r Rule) FindAll(text string) []string {
	matches := r.Pattern.FindAllStringSubmatch(text, -1)
	if matches == nil {
		return nil
	}
	bodies := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) > 1 {
			bodies = append(bodies, m[1])
		} else {
			bodies = append(bodies, m[0])
		}
	}
	return bodies
}

// Rules is an ordered list of section rules; earlier rules win.
type Rules []Rule

// First tries each rule in order and returns the first matching body.
func (rs Rules) First(text string) (string, bool) {
	for _, r := range rs {
		if body, ok := r.Find(text); ok {
			return body, true
		}
	}
	return "", false
}

// All collects the bodies of every rule that matches, in rule order.
func (rs Rules) All(text string) []string {
	var bodies []string
	for _, r := range rs {
		bodies = append(bodies, r.FindAll(text)...)
	}
	return bodies
}
