package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/libreria/backoffice/pkg/response"
)

// ErrCodeTooManyRequests 限流错误码
const ErrCodeTooManyRequests = 42900

// RateLimit 全局令牌桶限流
// limit<=0时不限流
func RateLimit(limit float64, burst int) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(limit), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorBody{
				Error: "Demasiadas solicitudes, intente de nuevo más tarde",
				Code:  ErrCodeTooManyRequests,
			})
			return
		}
		c.Next()
	}
}
