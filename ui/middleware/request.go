package middleware

import (
	"time"

	"econhub/domain/core"
	"econhub/internal"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key holding the core.RequestID
const RequestIDKey = "requestID"

// RequestID accepts a caller supplied UUID request ID or issues a new one,
// and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := core.ParseRequestID(c.GetHeader(RequestIDHeader))
		if err != nil {
			id = core.NewRequestID()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id.String())
		c.Next()
	}
}

// GetRequestID returns the request ID stored by RequestID
func GetRequestID(c *gin.Context) core.RequestID {
	if v, ok := c.Get(RequestIDKey); ok {
		if id, ok := v.(core.RequestID); ok {
			return id
		}
	}
	return ""
}

// AccessLog writes one structured line per request
func AccessLog(logger *internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Infow("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", float64(time.Since(start).Microseconds())/1000,
			"request_id", GetRequestID(c).String(),
		)
	}
}
