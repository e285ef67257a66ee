// Package meta builds the search and social metadata for blog pages and
// writes it into an HTML document head.
package meta

import (
	"strings"

	"github.com/seo-optimizer/blogseo/textutil"
)

const excerptLength = 160

// Site describes the publication the pages belong to.
type Site struct {
	Name         string `json:"name"`
	Origin       string `json:"origin"`
	APIURL       string `json:"apiUrl"`
	DefaultImage string `json:"defaultImage"`
	Description  string `json:"description"`
}

// Post is a published blog post as returned by the content API.
type Post struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Content    string   `json:"content"`
	CoverImage string   `json:"coverImage"`
	Tags       []string `json:"tags"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
	AuthorName string   `json:"authorName"`
}

// Tag is a single <meta> element. Attr is "name" or "property".
type Tag struct {
	Attr    string `json:"attr"`
	Key     string `json:"key"`
	Content string `json:"content"`
}

// Excerpt returns the summary, or the first 160 characters of the content
// with markup removed and whitespace collapsed.
func Excerpt(p Post) string {
	if p.Summary != "" {
		return p.Summary
	}
	return strings.Join(strings.Fields(textutil.StripTags(textutil.Truncate(p.Content, excerptLength))), " ")
}

// PageTitle appends the site name to title.
func (s Site) PageTitle(title string) string {
	if title == "" {
		return s.Name
	}
	return title + " | " + s.Name
}

// PostURL is the canonical address of p.
func (s Site) PostURL(p Post) string {
	return strings.TrimSuffix(s.Origin, "/") + "/blog/" + p.ID
}

// AbsoluteURL resolves u against the site. Uploads and API paths live on
// the API host, everything else on the site origin.
func (s Site) AbsoluteURL(u string) string {
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "http"):
		return u
	case strings.HasPrefix(u, "/uploads/"), strings.HasPrefix(u, "/api/"):
		return strings.TrimSuffix(s.APIURL, "/") + u
	case strings.HasPrefix(u, "/"):
		return strings.TrimSuffix(s.Origin, "/") + u
	default:
		return strings.TrimSuffix(s.Origin, "/") + "/" + u
	}
}

func (s Site) coverImage(p Post) string {
	if p.CoverImage == "" {
		return s.AbsoluteURL(s.DefaultImage)
	}
	return s.AbsoluteURL(p.CoverImage)
}

// BlogTags returns the meta tags for a blog post page.
func BlogTags(s Site, p Post) []Tag {
	title := s.PageTitle(p.Title)
	description := Excerpt(p)
	image := s.coverImage(p)

	tags := []Tag{{Attr: "name", Key: "description", Content: description}}

	if len(p.Tags) > 0 {
		kw := append(append([]string(nil), p.Tags...), "blog", "article", strings.ToLower(s.Name))
		tags = append(tags, Tag{Attr: "name", Key: "keywords", Content: strings.Join(kw, ", ")})
	}

	tags = append(tags,
		Tag{Attr: "property", Key: "og:title", Content: title},
		Tag{Attr: "property", Key: "og:description", Content: description},
		Tag{Attr: "property", Key: "og:url", Content: s.PostURL(p)},
		Tag{Attr: "property", Key: "og:image", Content: image},
		Tag{Attr: "property", Key: "og:type", Content: "article"},
		Tag{Attr: "property", Key: "twitter:title", Content: title},
		Tag{Attr: "property", Key: "twitter:description", Content: description},
		Tag{Attr: "property", Key: "twitter:image", Content: image},
	)

	if p.CreatedAt != "" {
		tags = append(tags, Tag{Attr: "property", Key: "article:published_time", Content: p.CreatedAt})
	}
	if p.UpdatedAt != "" {
		tags = append(tags, Tag{Attr: "property", Key: "article:modified_time", Content: p.UpdatedAt})
	}
	if p.AuthorName != "" {
		tags = append(tags, Tag{Attr: "property", Key: "article:author", Content: p.AuthorName})
	}
	for _, t := range p.Tags {
		tags = append(tags, Tag{Attr: "property", Key: "article:tag", Content: t})
	}

	return tags
}
