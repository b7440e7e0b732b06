package middleware

import (
	"time"

	"gym-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency by route template so path ids do not explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
