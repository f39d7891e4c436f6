package middleware

import (
	"strconv"
	"time"

	"attendance/dashboard/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records every request against its route pattern, so ids in the
// path do not create new series.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
