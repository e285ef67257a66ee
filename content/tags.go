package content

import (
	"slices"
	"strings"
)

// MergeTags returns the union of tags and selected. Matching is exact and
// case-sensitive; existing tags keep their order and new ones follow in
// selection order.
func MergeTags(tags, selected []string) []string {
	seen := make(map[string]bool, len(tags)+len(selected))
	out := make([]string, 0, len(tags)+len(selected))
	for _, group := range [][]string{tags, selected} {
		for _, t := range group {
			if seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// ToggleKeyword removes keyword from selected if present, otherwise appends it.
func ToggleKeyword(selected []string, keyword string) []string {
	if i := slices.Index(selected, keyword); i >= 0 {
		return slices.Delete(slices.Clone(selected), i, i+1)
	}
	return append(slices.Clone(selected), keyword)
}

// AddTag appends tag after trimming it. Empty and duplicate tags are ignored.
func AddTag(tags []string, tag string) []string {
	tag = strings.TrimSpace(tag)
	if tag == "" || slices.Contains(tags, tag) {
		return slices.Clone(tags)
	}
	return append(slices.Clone(tags), tag)
}

// RemoveTag drops every occurrence of tag.
func RemoveTag(tags []string, tag string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}
