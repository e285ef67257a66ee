package meta

import "strings"

// Thing is a schema.org JSON-LD object.
type Thing map[string]any

const schemaContext = "https://schema.org"

func (s Site) publisher() Thing {
	return Thing{
		"@type": "Organization",
		"name":  s.Name,
		"logo": Thing{
			"@type": "ImageObject",
			"url":   s.AbsoluteURL(s.DefaultImage),
		},
	}
}

// BlogPosting describes a single post.
func BlogPosting(s Site, p Post) Thing {
	author := p.AuthorName
	if author == "" {
		author = s.Name + " Author"
	}
	return Thing{
		"@context":      schemaContext,
		"@type":         "BlogPosting",
		"headline":      p.Title,
		"description":   Excerpt(p),
		"image":         s.AbsoluteURL(p.CoverImage),
		"datePublished": p.CreatedAt,
		"dateModified":  p.UpdatedAt,
		"author": Thing{
			"@type": "Person",
			"name":  author,
		},
		"publisher": s.publisher(),
		"mainEntityOfPage": Thing{
			"@type": "WebPage",
			"@id":   s.PostURL(p),
		},
	}
}

// WebSite describes the home page, including the site search action.
func WebSite(s Site) Thing {
	origin := strings.TrimSuffix(s.Origin, "/")
	return Thing{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     s.Name,
		"url":      origin,
		"potentialAction": Thing{
			"@type":       "SearchAction",
			"target":      origin + "/search?q={search_term_string}",
			"query-input": "required name=search_term_string",
		},
		"description": s.Description,
		"publisher":   s.publisher(),
	}
}

// CollectionPage describes a blog listing, optionally for one category.
func CollectionPage(s Site, category string) Thing {
	origin := strings.TrimSuffix(s.Origin, "/")
	name := "Blogs & Articles - " + s.Name
	description := "Browse through our extensive collection of blogs and articles on various topics."
	url := origin + "/blogs"
	if category != "" {
		name = category + " Blogs - " + s.Name
		description = "Explore our collection of " + category + " blogs and articles."
		url = origin + "/blogs/category/" + strings.ToLower(category)
	}

	return Thing{
		"@context":    schemaContext,
		"@type":       "CollectionPage",
		"name":        name,
		"description": description,
		"url":         url,
		"isPartOf": Thing{
			"@type": "WebSite",
			"name":  s.Name,
			"url":   origin,
		},
		"publisher": s.publisher(),
	}
}
