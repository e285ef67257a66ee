package textutil

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"How to Learn Go", "how-to-learn-go"},
		{"  Hello,   World! ", "-hello-world-"},
		{"C++ & Rust_lang", "c--rust_lang"},
		{"", ""},
		{"Ünïcode Title", "ncode-title"},
		{"Learn\u00a0Go", "learn-go"},
		{"tabs\tand\vvertical\u2028lines", "tabs-and-vertical-lines"},
		{"ideographic\u3000space", "ideographic-space"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugifyMatchesFields(t *testing.T) {
	for _, in := range []string{"Learn\u00a0Go Fast", "a\u2003b\u0085c", " x\ty "} {
		want := strings.Join(strings.Fields(strings.ToLower(in)), "-")
		if got := strings.Trim(Slugify(in), "-"); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"<p>one two</p><p>three</p>", 3},
		{"<p>one</p>two", 2},
		{"   <br/>  ", 0},
		{"<h2>Title</h2>\n<p>body text here</p>", 4},
	}

	for _, tt := range tests {
		if got := WordCount(tt.in); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("How to Learn Go", "learn GO") {
		t.Error("expected case-insensitive match")
	}
	if ContainsFold("anything", "") {
		t.Error("empty needle must not match")
	}
	if ContainsFold("", "go") {
		t.Error("empty haystack must not match")
	}
}

func TestCharLenAndTruncate(t *testing.T) {
	if got := CharLen("héllo"); got != 5 {
		t.Errorf("CharLen = %d, want 5", got)
	}
	if got := Truncate("héllo world", 5); got != "héllo" {
		t.Errorf("Truncate = %q, want %q", got, "héllo")
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate = %q, want %q", got, "short")
	}
	if got := Truncate("abc", 0); got != "" {
		t.Errorf("Truncate = %q, want empty", got)
	}
}
