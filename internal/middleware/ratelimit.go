package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"todoist-export/pkg/response"
)

// RateLimit returns a per-client-IP limiter. Every export triggers a
// full upstream sync, so the download route is throttled to
// rateLimitPerMin requests per minute per IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if m.rateLimitPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if !m.limiterFor(c.ClientIP()).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many export requests, slow down",
			})
			return
		}
		c.Next()
	}
}

// limiterFor returns the limiter for one client IP, creating it on
// first sight. The table is an expirable LRU (see New), so lookups and
// inserts are already synchronized.
func (m Middleware) limiterFor(ip string) *rate.Limiter {
	if l, ok := m.limiters.Get(ip); ok {
		return l
	}
	l := rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.rateLimitPerMin)), m.rateLimitPerMin)
	m.limiters.Add(ip, l)
	return l
}
