// Package api exposes the keyword, checklist and metadata operations over HTTP.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seo-optimizer/blogseo/analyzer"
	"github.com/seo-optimizer/blogseo/content"
	"github.com/seo-optimizer/blogseo/logging"
	"github.com/seo-optimizer/blogseo/meta"
	"github.com/seo-optimizer/blogseo/middleware"
)

// maxHTMLBytes bounds the page accepted by the inject endpoint.
const maxHTMLBytes = 2 << 20

// Server holds the handler dependencies.
type Server struct {
	analyzer    *analyzer.Analyzer
	site        meta.Site
	statistics  *logging.Statistics
	rateLimiter *middleware.RateLimiter
	logger      logging.Logger
}

// Options configures NewServer. Statistics and RateLimiter are optional.
type Options struct {
	Analyzer    *analyzer.Analyzer
	Site        meta.Site
	Statistics  *logging.Statistics
	RateLimiter *middleware.RateLimiter
	Logger      logging.Logger
}

func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Server{
		analyzer:    opts.Analyzer,
		site:        opts.Site,
		statistics:  opts.Statistics,
		rateLimiter: opts.RateLimiter,
		logger:      logger.With(logging.F("component", "api")),
	}
}

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	if gin.Mode() == gin.DebugMode {
		r.Use(gin.Logger())
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler(s.logger))
	if s.rateLimiter != nil {
		r.Use(s.rateLimiter.RateLimit())
	}
	r.Use(middleware.CORS())
	if s.statistics != nil {
		r.Use(middleware.Stats(s.statistics, s.logger))
	}

	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/statistics", s.getStatistics)

		api.POST("/keywords", s.suggestKeywords)
		api.POST("/keywords/toggle", s.toggleKeyword)
		api.POST("/tags/merge", s.mergeTags)
		api.POST("/score", s.scoreDraft)

		api.GET("/checks", s.listChecks)

		api.POST("/meta/blog", s.blogMeta)
		api.POST("/meta/inject", s.injectMeta)
		api.GET("/meta/home", s.homeMeta)
		api.GET("/meta/blogs", s.listingMeta)
	}

	return r
}

func (s *Server) requestLogger(c *gin.Context) logging.Logger {
	return s.logger.With(logging.F("request_id", c.GetString(middleware.RequestIDKey)))
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getStatistics(c *gin.Context) {
	out := gin.H{"usage": s.analyzer.GetStats().GetCurrentStats()}
	if s.statistics != nil {
		out["requests"] = s.statistics.GetStatistics()
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) suggestKeywords(c *gin.Context) {
	var request struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":    request.Title,
		"keywords": s.analyzer.SuggestKeywords(request.Title),
	})
}

func (s *Server) toggleKeyword(c *gin.Context) {
	var request struct {
		Selected []string `json:"selected"`
		Keyword  string   `json:"keyword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		badRequest(c, "A keyword is required")
		return
	}

	c.JSON(http.StatusOK, gin.H{"selected": content.ToggleKeyword(request.Selected, request.Keyword)})
}

func (s *Server) mergeTags(c *gin.Context) {
	var request struct {
		Tags     []string `json:"tags"`
		Selected []string `json:"selected"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": content.MergeTags(request.Tags, request.Selected)})
}

func (s *Server) scoreDraft(c *gin.Context) {
	var draft content.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		badRequest(c, "Invalid draft")
		return
	}

	report, err := s.analyzer.Score(draft)
	if err != nil {
		if errors.Is(err, content.ErrUnknownFormat) {
			badRequest(c, err.Error())
			return
		}
		s.requestLogger(c).Error("scoring failed", logging.F("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to score draft"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) listChecks(c *gin.Context) {
	checks := analyzer.Checks()
	out := make([]gin.H, 0, len(checks))
	for _, check := range checks {
		out = append(out, gin.H{"name": check.Name, "label": check.Label, "tip": check.Tip})
	}
	c.JSON(http.StatusOK, gin.H{"checks": out})
}

func (s *Server) blogMeta(c *gin.Context) {
	var post meta.Post
	if err := c.ShouldBindJSON(&post); err != nil || strings.TrimSpace(post.ID) == "" {
		badRequest(c, "A post with an id is required")
		return
	}

	page := meta.BlogPage(s.site, post)
	s.analyzer.RecordMetaRender(false)
	c.JSON(http.StatusOK, gin.H{
		"title":          page.Title,
		"canonical":      page.Canonical,
		"tags":           page.Tags,
		"structuredData": page.StructuredData,
	})
}

func (s *Server) injectMeta(c *gin.Context) {
	var request struct {
		HTML string    `json:"html" binding:"required"`
		Post meta.Post `json:"post"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		badRequest(c, "An html document is required")
		return
	}
	if len(request.HTML) > maxHTMLBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Document too large"})
		return
	}

	out, err := meta.Inject(strings.NewReader(request.HTML), meta.BlogPage(s.site, request.Post))
	if err != nil {
		s.analyzer.RecordMetaRender(true)
		s.requestLogger(c).Error("meta injection failed", logging.F("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to inject metadata"})
		return
	}

	s.analyzer.RecordMetaRender(false)
	c.JSON(http.StatusOK, gin.H{"html": out})
}

func (s *Server) homeMeta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":          s.site.PageTitle(""),
		"structuredData": meta.WebSite(s.site),
	})
}

func (s *Server) listingMeta(c *gin.Context) {
	category := c.Query("category")
	c.JSON(http.StatusOK, gin.H{"structuredData": meta.CollectionPage(s.site, category)})
}
