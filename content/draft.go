// Package content models the post being authored and the tag operations the
// editor applies to it.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// Body formats accepted in Draft.Format.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// ErrUnknownFormat is returned by Render for formats other than html and markdown.
var ErrUnknownFormat = errors.New("unknown content format")

// Draft is the in-progress post as the editor holds it.
type Draft struct {
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	FocusKeyword   string   `json:"focusKeyword"`
	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
	Tags           []string `json:"tags"`
	Format         string   `json:"format,omitempty"`
}

// EffectiveTitle is the title search engines will see.
func (d Draft) EffectiveTitle() string {
	if d.SEOTitle != "" {
		return d.SEOTitle
	}
	return d.Title
}

var md = goldmark.New()

// Render returns a copy of d whose Content is HTML. Markdown bodies are
// converted, HTML bodies are returned as is.
func Render(d Draft) (Draft, error) {
	switch strings.ToLower(d.Format) {
	case "", FormatHTML:
		return d, nil
	case FormatMarkdown:
		var buf bytes.Buffer
		if err := md.Convert([]byte(d.Content), &buf); err != nil {
			return Draft{}, fmt.Errorf("failed to render markdown: %w", err)
		}
		out := d
		out.Content = buf.String()
		out.Format = FormatHTML
		return out, nil
	default:
		return Draft{}, fmt.Errorf("%w: %q", ErrUnknownFormat, d.Format)
	}
}
