// Package textutil holds the small string helpers shared by the keyword
// suggester, the checklist and the metadata builders.
package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	// same set as unicode.IsSpace, which strings.Fields splits on
	whitespacePattern = regexp.MustCompile(`[\s\v\x{85}\p{Z}]+`)
	nonSlugPattern    = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
)

// CharLen returns the length of s in characters rather than bytes.
func CharLen(s string) int {
	return utf8.RuneCountInString(s)
}

// ContainsFold reports whether needle occurs in haystack ignoring case.
// An empty needle never matches.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Slugify approximates the URL path a title would get: lowercase, whitespace
// runs become a single hyphen, everything outside [A-Za-z0-9_-] is dropped.
func Slugify(s string) string {
	slug := strings.ToLower(s)
	slug = whitespacePattern.ReplaceAllString(slug, "-")
	return nonSlugPattern.ReplaceAllString(slug, "")
}

// StripTags replaces every markup tag with a space.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, " ")
}

// WordCount counts whitespace separated words after stripping markup.
func WordCount(markup string) int {
	return len(strings.Fields(StripTags(markup)))
}

// Truncate returns at most n characters of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
