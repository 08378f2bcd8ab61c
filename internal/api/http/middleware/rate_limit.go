package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware bounds how fast this process accepts mutating
// requests. The limiter is shared per route group, not per client.
func RateLimitMiddleware(rps rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rps, burst)

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			if !limiter.Allow() {
				c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many requests"})
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
