package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger returns a gin middleware for request logging. Redirect hits
// dominate traffic, so successful redirects are logged at debug level
// while API calls and failures stay at info and above.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		if path == "/health" {
			return
		}

		latency := time.Since(start)
		status := c.Writer.Status()

		var evt *zerolog.Event
		switch {
		case status >= 500:
			evt = log.Error()
		case status >= 400:
			evt = log.Warn()
		case status == 301 || status == 302:
			evt = log.Debug()
		default:
			evt = log.Info()
		}

		evt.
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Str("referrer", c.Request.Referer()).
			Str("user_agent", c.Request.UserAgent()).
			Msg("HTTP request")
	}
}
