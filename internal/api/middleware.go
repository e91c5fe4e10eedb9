package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"godist/internal"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestID"

// RequestID tags each request with a UUID. A well-formed incoming
// X-Request-ID is kept; anything else is replaced.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog logs and records every request once the handler chain returns
func AccessLog(logger *internal.Logger, metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		status := c.Writer.Status()
		metrics.observeRequest(route, status, elapsed)

		if status >= 500 {
			logger.Error("[API] %s %s %d %s request=%s", c.Request.Method, route, status, elapsed, c.GetString(requestIDKey))
			return
		}
		logger.Debug("[API] %s %s %d %s request=%s", c.Request.Method, route, status, elapsed, c.GetString(requestIDKey))
	}
}
