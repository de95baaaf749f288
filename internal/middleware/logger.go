package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amestri/cineshelf/internal/pkg/logger"
)

var skipPaths = map[string]bool{
	"/health": true,
}

// Logger records one line per request: method, path, status and latency.
// Server errors log at error level so they stand out in aggregate.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= 500:
			logger.Error("%s %s -> %d (%v)", method, path, status, latency)
		case status >= 400:
			logger.Warn("%s %s -> %d (%v)", method, path, status, latency)
		default:
			logger.Info("%s %s -> %d (%v)", method, path, status, latency)
		}
	}
}
