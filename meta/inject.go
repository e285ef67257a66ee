package meta

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

const structuredDataID = "structured-data"

// Page is everything Inject writes into a document head.
type Page struct {
	Title     string
	Tags      []Tag
	Canonical string
	// StructuredData replaces the existing JSON-LD block. Nil leaves it alone.
	StructuredData any
}

// BlogPage assembles the Page for a blog post.
func BlogPage(s Site, p Post) Page {
	return Page{
		Title:          s.PageTitle(p.Title),
		Tags:           BlogTags(s, p),
		Canonical:      s.PostURL(p),
		StructuredData: BlogPosting(s, p),
	}
}

// Inject parses the HTML from r and rewrites its head for page: the title
// is set, each meta tag is updated or created, repeated keys such as
// article:tag are replaced as a group, the canonical link is updated or
// created and the JSON-LD block is swapped.
func Inject(r io.Reader, page Page) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse document: %w", err)
	}

	head := doc.Find("head").First()

	if page.Title != "" {
		title := head.Find("title").First()
		if title.Length() == 0 {
			title = head.AppendHtml("<title></title>").Children().Last()
		}
		title.SetText(page.Title)
	}

	setMetaTags(head, page.Tags)

	if page.Canonical != "" {
		link := head.Find(`link[rel="canonical"]`).First()
		if link.Length() == 0 {
			link = head.AppendHtml(`<link rel="canonical">`).Children().Last()
		}
		link.SetAttr("href", page.Canonical)
	}

	if page.StructuredData != nil {
		data, err := json.Marshal(page.StructuredData)
		if err != nil {
			return "", fmt.Errorf("failed to encode structured data: %w", err)
		}
		doc.Find("script#" + structuredDataID).Remove()
		script := head.AppendHtml(`<script type="application/ld+json"></script>`).Children().Last()
		script.SetAttr("id", structuredDataID)
		script.SetHtml(string(data))
	}

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}
	return out, nil
}

func metaSelector(t Tag) string {
	return fmt.Sprintf("meta[%s=%q]", t.Attr, t.Key)
}

func setMetaTags(head *goquery.Selection, tags []Tag) {
	counts := make(map[Tag]int, len(tags))
	for _, t := range tags {
		counts[Tag{Attr: t.Attr, Key: t.Key}]++
	}

	cleared := make(map[Tag]bool)
	for _, t := range tags {
		id := Tag{Attr: t.Attr, Key: t.Key}

		if counts[id] > 1 || t.Key == "article:tag" {
			if !cleared[id] {
				head.Find(metaSelector(t)).Remove()
				cleared[id] = true
			}
			appendMeta(head, t)
			continue
		}

		existing := head.Find(metaSelector(t)).First()
		if existing.Length() == 0 {
			appendMeta(head, t)
			continue
		}
		existing.SetAttr("content", t.Content)
	}
}

func appendMeta(head *goquery.Selection, t Tag) {
	el := head.AppendHtml("<meta>").Children().Last()
	el.SetAttr(t.Attr, t.Key)
	el.SetAttr("content", t.Content)
}
