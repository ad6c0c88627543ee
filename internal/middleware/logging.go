package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/francis-villapando/pulsepoint/pkg/logger"
)

// LoggingMiddleware logs every request with timing and status.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		rawQuery := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		method := c.Request.Method
		clientIP := c.ClientIP()

		adminID, _ := c.Get("adminId")
		adminStr := ""
		if adminID != nil {
			adminStr = adminID.(string)
		}

		event := logger.Log.Info()
		if status >= 400 {
			event = logger.Log.Warn()
		}
		if status >= 500 {
			event = logger.Log.Error()
		}

		event.
			Str("method", method).
			Str("path", path).
			Str("query", rawQuery).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", clientIP).
			Str("admin_id", adminStr).
			Int("body_size", c.Writer.Size()).
			Msg("request")
	}
}
