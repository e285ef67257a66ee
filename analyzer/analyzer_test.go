package analyzer

import (
	"errors"
	"sync"
	"testing"

	"github.com/seo-optimizer/blogseo/content"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := New(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() {
		if err := a.Shutdown(); err != nil {
			t.Errorf("Shutdown: %v", err)
		}
	})
	return a
}

func TestAnalyzerScoreMarkdown(t *testing.T) {
	a := newTestAnalyzer(t)

	report, err := a.Score(content.Draft{
		Title:        "How to Learn Go",
		FocusKeyword: "learn go",
		Content:      "Learn Go fast\n\n## Tooling\n\nSee [the docs](/docs).\n\n![gopher](/gopher.png)\n",
		Format:       content.FormatMarkdown,
	})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	for _, name := range []string{
		CheckKeywordInFirstParagraph,
		CheckReadability,
		CheckInternalLinks,
		CheckImageAlt,
	} {
		if !report.Checks[name] {
			t.Errorf("%s should pass for rendered markdown", name)
		}
	}

	if got := a.GetStats().GetCurrentStats().Scorings; got != 1 {
		t.Errorf("Scorings = %d, want 1", got)
	}
}

func TestAnalyzerScoreUnknownFormat(t *testing.T) {
	a := newTestAnalyzer(t)

	_, err := a.Score(content.Draft{Format: "asciidoc"})
	if !errors.Is(err, content.ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
	if got := a.GetStats().GetCurrentStats().Errors; got != 1 {
		t.Errorf("Errors = %d, want 1", got)
	}
}

func TestAnalyzerConcurrentUse(t *testing.T) {
	a := newTestAnalyzer(t)
	d := perfectDraft()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				a.SuggestKeywords(d.Title)
				return
			}
			if r, err := a.Score(d); err != nil || r.Score != 100 {
				t.Errorf("Score = %d, %v", r.Score, err)
			}
		}(i)
	}
	wg.Wait()

	current := a.GetStats().GetCurrentStats()
	if current.Suggestions != 25 || current.Scorings != 25 {
		t.Errorf("stats = %+v, want 25 suggestions and 25 scorings", current)
	}

	a.RecordMetaRender(false)
	a.RecordMetaRender(true)
	current = a.GetStats().GetCurrentStats()
	if current.MetaRenders != 1 || current.Errors != 1 {
		t.Errorf("stats = %+v, want 1 meta render and 1 error", current)
	}
}
