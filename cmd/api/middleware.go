package main

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs one line per request through slog
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With("component", "http")

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelDebug
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		logger.Log(c.Request.Context(), level, "request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
		)
	}
}
