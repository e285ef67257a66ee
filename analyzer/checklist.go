package analyzer

import (
	"math"
	"strings"

	"github.com/seo-optimizer/blogseo/content"
	"github.com/seo-optimizer/blogseo/textutil"
)

// Check names, in checklist order.
const (
	CheckKeywordInTitle           = "focusKeywordInTitle"
	CheckKeywordInFirstParagraph  = "focusKeywordInFirstParagraph"
	CheckKeywordInURL             = "focusKeywordInURL"
	CheckKeywordInMetaDescription = "focusKeywordInMetaDescription"
	CheckTitleLength              = "titleLength"
	CheckMetaDescriptionLength    = "metaDescriptionLength"
	CheckContentLength            = "contentLength"
	CheckInternalLinks            = "internalLinks"
	CheckImageAlt                 = "imageAlt"
	CheckReadability              = "readability"
)

const (
	minTitleLength       = 40
	maxTitleLength       = 60
	minDescriptionLength = 140
	maxDescriptionLength = 160
	minWordCount         = 300
)

// focusKeyword returns the keyword to look for, or "" when none was chosen.
func focusKeyword(d content.Draft) string {
	if strings.TrimSpace(d.FocusKeyword) == "" {
		return ""
	}
	return d.FocusKeyword
}

// firstParagraph is everything before the first closing paragraph tag.
func firstParagraph(markup string) string {
	end := strings.Index(markup, "</p>")
	if end < 0 {
		return ""
	}
	return markup[:end]
}

func between(n, lo, hi int) bool {
	return n >= lo && n <= hi
}

var checklist = []Check{
	{
		Name:  CheckKeywordInTitle,
		Label: "Focus keyword in title",
		Tip:   "Including your focus keyword in the title helps search engines understand what your content is about.",
		Eval: func(d content.Draft) bool {
			return textutil.ContainsFold(d.Title, focusKeyword(d))
		},
	},
	{
		Name:  CheckKeywordInFirstParagraph,
		Label: "Focus keyword in first paragraph",
		Tip:   "Using your focus keyword early in your content signals its importance to search engines.",
		Eval: func(d content.Draft) bool {
			return textutil.ContainsFold(firstParagraph(d.Content), focusKeyword(d))
		},
	},
	{
		Name:  CheckKeywordInURL,
		Label: "Focus keyword in URL",
		Tip:   "URLs with the focus keyword tend to rank better in search results.",
		Eval: func(d content.Draft) bool {
			slug := textutil.Slugify(focusKeyword(d))
			return slug != "" && strings.Contains(textutil.Slugify(d.Title), slug)
		},
	},
	{
		Name:  CheckKeywordInMetaDescription,
		Label: "Focus keyword in meta description",
		Tip:   "Including your focus keyword in the meta description can improve click-through rates from search results.",
		Eval: func(d content.Draft) bool {
			return textutil.ContainsFold(d.SEODescription, focusKeyword(d))
		},
	},
	{
		Name:  CheckTitleLength,
		Label: "Title length (40-60 characters ideal)",
		Tip:   "Titles that are too long may be truncated in search results. Titles that are too short may not be descriptive enough.",
		Eval: func(d content.Draft) bool {
			return between(textutil.CharLen(d.EffectiveTitle()), minTitleLength, maxTitleLength)
		},
	},
	{
		Name:  CheckMetaDescriptionLength,
		Label: "Meta description length (140-160 characters ideal)",
		Tip:   "Meta descriptions should be compelling and the right length to display fully in search results.",
		Eval: func(d content.Draft) bool {
			return between(textutil.CharLen(d.SEODescription), minDescriptionLength, maxDescriptionLength)
		},
	},
	{
		Name:  CheckContentLength,
		Label: "Content length (at least 300 words)",
		Tip:   "Longer, comprehensive content tends to rank better for competitive keywords.",
		Eval: func(d content.Draft) bool {
			return textutil.WordCount(d.Content) >= minWordCount
		},
	},
	{
		Name:  CheckInternalLinks,
		Label: "Internal links to other content",
		Tip:   "Internal linking helps search engines discover and understand the structure of your website.",
		Eval: func(d content.Draft) bool {
			return strings.Contains(d.Content, "href=")
		},
	},
	{
		Name:  CheckImageAlt,
		Label: "Images with alt text",
		Tip:   "Alt text helps search engines understand images and improves accessibility.",
		Eval: func(d content.Draft) bool {
			return strings.Contains(d.Content, "alt=")
		},
	},
	{
		Name:  CheckReadability,
		Label: "Content structure with headings",
		Tip:   "Well-structured content with headings improves readability and SEO.",
		Eval: func(d content.Draft) bool {
			return strings.Contains(d.Content, "<h2") || strings.Contains(d.Content, "<h3")
		},
	},
}

// Checks returns a copy of the checklist in evaluation order
func Checks() []Check {
	out := make([]Check, len(checklist))
	copy(out, checklist)
	return out
}

// Advice maps a 0-100 score to a recommendation
func Advice(score int) string {
	switch {
	case score < 40:
		return "Your content needs significant SEO improvements to rank well."
	case score < 70:
		return "Your content has moderate SEO optimization but could be improved."
	case score < 90:
		return "Your content is well optimized for SEO with minor improvements possible."
	default:
		return "Excellent! Your content is highly optimized for search engines."
	}
}

// Score evaluates d against every check. It never fails: missing fields
// simply fail the checks that depend on them.
func Score(d content.Draft) ScoreReport {
	report := ScoreReport{
		Checks:  make(map[string]bool, len(checklist)),
		Results: make([]CheckResult, 0, len(checklist)),
	}

	passed := 0
	for _, c := range checklist {
		ok := c.Eval(d)
		if ok {
			passed++
		}
		report.Checks[c.Name] = ok
		report.Results = append(report.Results, CheckResult{
			Name:   c.Name,
			Label:  c.Label,
			Tip:    c.Tip,
			Passed: ok,
		})
	}

	report.Score = int(math.Round(100 * float64(passed) / float64(len(checklist))))
	report.Advice = Advice(report.Score)
	return report
}
