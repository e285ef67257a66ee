package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/seo-optimizer/blogseo/logging"
)

// ErrorHandler recovers from panics in later handlers and answers 500
func ErrorHandler(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					logging.F("error", err),
					logging.F("path", c.Request.URL.Path),
					logging.F("request_id", c.GetString(RequestIDKey)),
					logging.F("stack", string(debug.Stack())))

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "An unexpected error occurred",
				})
			}
		}()

		c.Next()
	}
}
