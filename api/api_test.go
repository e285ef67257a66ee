package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/seo-optimizer/blogseo/analyzer"
	"github.com/seo-optimizer/blogseo/logging"
	"github.com/seo-optimizer/blogseo/meta"
	"github.com/seo-optimizer/blogseo/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()

	a, err := analyzer.New(dir, nil)
	if err != nil {
		t.Fatalf("analyzer.New: %v", err)
	}
	t.Cleanup(func() { a.Shutdown() })

	stats, err := logging.NewStatistics(filepath.Join(dir, "statistics.json"), false)
	if err != nil {
		t.Fatalf("NewStatistics: %v", err)
	}

	s := NewServer(Options{
		Analyzer:    a,
		Site:        meta.Site{Name: "LikhoVerse", Origin: "https://likhoverse.example", DefaultImage: "/LikhoVerse.png"},
		Statistics:  stats,
		RateLimiter: middleware.NewRateLimiter(1000, 1000),
	})
	return s.Router()
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("health = %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("missing request id header")
	}
}

func TestSuggestKeywords(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/keywords", map[string]string{"title": "Getting Started with React Hooks"})
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Keywords []string `json:"keywords"`
	}
	decode(t, w, &resp)
	if len(resp.Keywords) != 15 || resp.Keywords[0] != "getting" || resp.Keywords[4] != "getting started" {
		t.Errorf("keywords = %v", resp.Keywords)
	}

	w = do(t, r, http.MethodPost, "/api/keywords", map[string]string{"title": "Go"})
	decode(t, w, &resp)
	if w.Code != http.StatusOK || resp.Keywords == nil || len(resp.Keywords) != 0 {
		t.Errorf("short title: %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/api/keywords", "{not json")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad body: code = %d", w.Code)
	}
}

func TestScoreDraft(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/score", map[string]any{
		"title":        "How to Learn Go",
		"focusKeyword": "learn go",
		"content":      "<p>Learn Go fast</p>",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d: %s", w.Code, w.Body.String())
	}
	var report analyzer.ScoreReport
	decode(t, w, &report)
	if report.Score != 30 || !report.Checks["focusKeywordInTitle"] || !report.Checks["focusKeywordInFirstParagraph"] {
		t.Errorf("report = %+v", report)
	}
	if len(report.Results) != 10 || report.Advice == "" {
		t.Errorf("incomplete report: %+v", report)
	}

	w = do(t, r, http.MethodPost, "/api/score", map[string]any{"content": "x", "format": "latex"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown format: code = %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/statistics", nil)
	var usage struct {
		Usage struct {
			Scorings int `json:"scorings"`
			Errors   int `json:"errors"`
		} `json:"usage"`
		Requests map[string]any `json:"requests"`
	}
	decode(t, w, &usage)
	if usage.Usage.Scorings != 1 || usage.Usage.Errors != 1 {
		t.Errorf("usage = %+v", usage.Usage)
	}
	if usage.Requests["totalRequests"].(float64) != 2 {
		t.Errorf("requests = %v", usage.Requests)
	}
}

func TestTagsAndToggle(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/tags/merge", map[string]any{
		"tags":     []string{"react", "web"},
		"selected": []string{"web", "react hooks"},
	})
	var merged struct {
		Tags []string `json:"tags"`
	}
	decode(t, w, &merged)
	if !reflect.DeepEqual(merged.Tags, []string{"react", "web", "react hooks"}) {
		t.Errorf("merged = %v", merged.Tags)
	}

	w = do(t, r, http.MethodPost, "/api/keywords/toggle", map[string]any{
		"selected": []string{"react", "hooks"},
		"keyword":  "react",
	})
	var toggled struct {
		Selected []string `json:"selected"`
	}
	decode(t, w, &toggled)
	if !reflect.DeepEqual(toggled.Selected, []string{"hooks"}) {
		t.Errorf("toggled = %v", toggled.Selected)
	}

	w = do(t, r, http.MethodPost, "/api/keywords/toggle", map[string]any{"selected": []string{}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing keyword: code = %d", w.Code)
	}
}

func TestChecks(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/api/checks", nil)
	var resp struct {
		Checks []map[string]string `json:"checks"`
	}
	decode(t, w, &resp)
	if len(resp.Checks) != 10 || resp.Checks[0]["name"] != "focusKeywordInTitle" {
		t.Errorf("checks = %v", resp.Checks)
	}
}

func TestBlogMeta(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/meta/blog", map[string]any{
		"id":      "42",
		"title":   "Learning Go",
		"summary": "A short tour.",
		"tags":    []string{"go"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Title          string         `json:"title"`
		Canonical      string         `json:"canonical"`
		Tags           []meta.Tag     `json:"tags"`
		StructuredData map[string]any `json:"structuredData"`
	}
	decode(t, w, &resp)
	if resp.Title != "Learning Go | LikhoVerse" || resp.Canonical != "https://likhoverse.example/blog/42" {
		t.Errorf("resp = %+v", resp)
	}
	if resp.StructuredData["@type"] != "BlogPosting" || len(resp.Tags) == 0 {
		t.Errorf("resp = %+v", resp)
	}

	w = do(t, r, http.MethodPost, "/api/meta/blog", map[string]any{"title": "no id"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing id: code = %d", w.Code)
	}
}

func TestInjectMeta(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/meta/inject", map[string]any{
		"html": "<html><head><title>old</title></head><body></body></html>",
		"post": map[string]any{"id": "7", "title": "Fresh"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		HTML string `json:"html"`
	}
	decode(t, w, &resp)
	for _, frag := range []string{"<title>Fresh | LikhoVerse</title>", `rel="canonical"`, "application/ld+json"} {
		if !strings.Contains(resp.HTML, frag) {
			t.Errorf("html missing %s: %s", frag, resp.HTML)
		}
	}

	w = do(t, r, http.MethodPost, "/api/meta/inject", map[string]any{"post": map[string]any{"id": "7"}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing html: code = %d", w.Code)
	}
}

func TestHomeAndListingMeta(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/meta/home", nil)
	if !strings.Contains(w.Body.String(), "SearchAction") {
		t.Errorf("home = %s", w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/api/meta/blogs?category=Tech", nil)
	if !strings.Contains(w.Body.String(), "/blogs/category/tech") {
		t.Errorf("listing = %s", w.Body.String())
	}
}
