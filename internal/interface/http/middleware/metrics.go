package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/libreria/backoffice/pkg/metrics"
)

// Metrics HTTP指标中间件
// path使用路由模板(/api/libros/:id),避免按id产生大量label
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.IncGauge(metrics.HTTPRequestsInProgress)
		defer metrics.DecGauge(metrics.HTTPRequestsInProgress)

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
