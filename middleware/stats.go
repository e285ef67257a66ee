package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seo-optimizer/blogseo/logging"
)

// saveEvery is how many tracked requests pass between statistics saves
const saveEvery = 100

// Stats tracks visitors and API request timings
func Stats(stats *logging.Statistics, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		stats.TrackVisitor(c.ClientIP())

		c.Next()

		path := c.Request.URL.Path
		if !strings.HasPrefix(path, "/api/") || path == "/api/health" || path == "/api/statistics" {
			return
		}

		loadTime := float64(time.Since(start).Microseconds()) / 1000
		stats.TrackRequest(c.Request.Method, path, loadTime, c.Writer.Status() >= 400)

		if stats.Requests()%saveEvery == 0 {
			go func() {
				if err := stats.Save(); err != nil {
					logger.Warn("failed to save statistics", logging.F("error", err))
				}
			}()
		}
	}
}
