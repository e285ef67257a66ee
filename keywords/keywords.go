// Package keywords derives SEO keyword candidates from a post title.
package keywords

import (
	"strings"

	"github.com/seo-optimizer/blogseo/textutil"
)

const (
	// MinTitleLength is the shortest title that produces suggestions.
	MinTitleLength = 5
	// MaxSuggestions caps the number of returned candidates.
	MaxSuggestions = 15
)

var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true,
	"that": true, "this": true, "from": true, "what": true,
	"how": true, "when": true, "where": true, "which": true,
}

// prefixes are combined with the longer single words to build long-tail phrases.
var prefixes = []string{"how to", "best", "top", "guide to", "tutorial for"}

// Suggest returns up to MaxSuggestions unique keyword candidates for title.
// The order is singles, bigrams, trigrams, then prefixed phrases, and it is
// stable for a given title.
func Suggest(title string) []string {
	if textutil.CharLen(title) < MinTitleLength {
		return []string{}
	}

	words := strings.Fields(strings.ToLower(title))

	var singles []string
	for _, w := range words {
		if textutil.CharLen(w) > 3 && !stopWords[w] {
			singles = append(singles, w)
		}
	}

	candidates := make([]string, 0, len(words)*3)
	candidates = append(candidates, singles...)

	// Stop words are not filtered out of multi-word phrases.
	for i := 0; i+1 < len(words); i++ {
		if long(words[i]) && long(words[i+1]) {
			candidates = append(candidates, words[i]+" "+words[i+1])
		}
	}

	if len(words) >= 3 {
		for i := 0; i+2 < len(words); i++ {
			if long(words[i]) && long(words[i+1]) && long(words[i+2]) {
				candidates = append(candidates, words[i]+" "+words[i+1]+" "+words[i+2])
			}
		}
	}

	for _, prefix := range prefixes {
		for _, w := range singles {
			if textutil.CharLen(w) > 4 {
				candidates = append(candidates, prefix+" "+w)
			}
		}
	}

	return dedupe(candidates, MaxSuggestions)
}

// long reports whether w may take part in a multi-word phrase.
func long(w string) bool {
	return textutil.CharLen(w) > 2
}

// dedupe keeps the first occurrence of every string, up to limit entries.
func dedupe(in []string, limit int) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, limit)
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}
