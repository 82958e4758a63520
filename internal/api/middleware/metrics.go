package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"transcript-control/internal/app/metrics"
)

// Metrics records request count and latency per route pattern
func Metrics(m *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
