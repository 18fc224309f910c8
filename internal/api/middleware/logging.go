package middleware

import (
	"time"

	"github.com/johndn/portfolio/internal/logging"
	"github.com/johndn/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request through the application logger.
// Output only appears when request logging is enabled (LOG_REQUESTS).
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
