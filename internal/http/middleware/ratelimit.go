package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/OOlexandr/Contacts/domain"
)

// RateLimitMW throttles anonymous endpoints per client IP.
type RateLimitMW struct {
	limiter domain.RateLimiter
}

// NewRateLimitMW creates new rate limit middleware wrapper
func NewRateLimitMW(limiter domain.RateLimiter) *RateLimitMW {
	return &RateLimitMW{limiter: limiter}
}

// Limit returns middleware that counts requests per client IP and route.
func (mw *RateLimitMW) Limit() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.FullPath()

		allowed, wait, err := mw.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests",
				"retry_after": int64(wait.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	})
}
