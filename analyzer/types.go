package analyzer

import "github.com/seo-optimizer/blogseo/content"

// Check is one named predicate of the SEO checklist
type Check struct {
	Name  string
	Label string
	Tip   string
	Eval  func(d content.Draft) bool
}

// CheckResult is the outcome of a single check
type CheckResult struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Tip    string `json:"tip"`
	Passed bool   `json:"passed"`
}

// ScoreReport is the checklist evaluation of a draft
type ScoreReport struct {
	Checks  map[string]bool `json:"checks"`
	Results []CheckResult   `json:"results"`
	Score   int             `json:"score"`
	Advice  string          `json:"advice"`
}

// Passed returns how many checks passed
func (r ScoreReport) Passed() int {
	n := 0
	for _, ok := range r.Checks {
		if ok {
			n++
		}
	}
	return n
}
