package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikey/llm-reply-writer/internal/metrics"
	"github.com/mikey/llm-reply-writer/internal/origins"
	"go.uber.org/zap"
)

// CORSMiddleware answers preflight requests and sets the CORS headers allowed by policy
func CORSMiddleware(policy *origins.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := policy.IsAllowed(origin)

		if allowed {
			if policy.AllowAll() {
				c.Header("Access-Control-Allow-Origin", origins.Wildcard)
			} else {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
		}

		if c.Request.Method == http.MethodOptions {
			if !allowed {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			} else {
				c.Header("Access-Control-Allow-Headers", "Content-Type")
			}
			c.Header("Access-Control-Max-Age", "1800")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// AccessLogMiddleware logs every request and records its latency
func AccessLogMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		metrics.RecordHTTPRequest(c.Request.Method, path, status, latency)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if status >= http.StatusInternalServerError {
			logger.Warn("Request failed", fields...)
			return
		}
		logger.Debug("Request handled", fields...)
	}
}
