// Package textutil provides small text helpers shared by the extractors.
package textutil

import (
	"strings"
	"unicode"
)

// TitleCase uppercases the first letter of every word, treating any
// non-letter as a word boundary ("node.js" becomes "Node.Js"). Extracted
// skill labels are case-folded then title-cased for display.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// Truncate caps s at limit runes, appending "..." when truncated.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// IsBulletLine reports whether a line starts with a bullet marker.
func IsBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "·") ||
		strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•")
}

// StripBullet removes a leading bullet marker and surrounding whitespace.
func StripBullet(line string) string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimLeft(trimmed, "-*•· \t")
	return strings.TrimSpace(trimmed)
}

// WordCount counts whitespace-delimited tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// DedupeFold appends items to dst, skipping entries already present under
// case folding, and returns the extended slice. Input order is preserved.
func DedupeFold(dst []string, seen map[string]bool, items ...string) []string {
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		dst = append(dst, item)
	}
	return dst
}
