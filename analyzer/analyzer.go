// Package analyzer scores blog drafts against the SEO checklist and serves
// keyword suggestions for the editor.
package analyzer

import (
	"fmt"

	"github.com/seo-optimizer/blogseo/content"
	"github.com/seo-optimizer/blogseo/keywords"
	"github.com/seo-optimizer/blogseo/logging"
	"github.com/seo-optimizer/blogseo/stats"
)

// Analyzer is the editor-facing entry point. It renders drafts, scores them
// and keeps usage counters.
type Analyzer struct {
	stats  *stats.Storage
	logger logging.Logger
}

// New creates an Analyzer whose counters are persisted under dataDir
func New(dataDir string, logger logging.Logger) (*Analyzer, error) {
	if logger == nil {
		logger = logging.Nop{}
	}

	statsStorage, err := stats.NewStorage(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stats storage: %w", err)
	}

	return &Analyzer{
		stats:  statsStorage,
		logger: logger.With(logging.F("component", "analyzer")),
	}, nil
}

// SuggestKeywords returns keyword candidates for title
func (a *Analyzer) SuggestKeywords(title string) []string {
	suggestions := keywords.Suggest(title)
	a.stats.Increment(stats.Delta{Suggestions: 1})
	a.logger.Debug("keywords suggested",
		logging.F("title_length", len(title)),
		logging.F("count", len(suggestions)))
	return suggestions
}

// Score renders d to HTML if needed and evaluates the checklist. Only an
// unrenderable draft produces an error.
func (a *Analyzer) Score(d content.Draft) (ScoreReport, error) {
	rendered, err := content.Render(d)
	if err != nil {
		a.stats.Increment(stats.Delta{Errors: 1})
		return ScoreReport{}, fmt.Errorf("failed to prepare draft: %w", err)
	}

	report := Score(rendered)
	a.stats.Increment(stats.Delta{Scorings: 1})
	a.logger.Debug("draft scored",
		logging.F("score", report.Score),
		logging.F("passed", report.Passed()))
	return report, nil
}

// RecordMetaRender counts a metadata build or head injection.
func (a *Analyzer) RecordMetaRender(failed bool) {
	if failed {
		a.stats.Increment(stats.Delta{Errors: 1})
		return
	}
	a.stats.Increment(stats.Delta{MetaRenders: 1})
}

// GetStats returns the statistics storage instance
func (a *Analyzer) GetStats() *stats.Storage {
	return a.stats
}

// Shutdown flushes the usage counters
func (a *Analyzer) Shutdown() error {
	if a == nil || a.stats == nil {
		return nil
	}
	if err := a.stats.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown stats storage: %w", err)
	}
	return nil
}
