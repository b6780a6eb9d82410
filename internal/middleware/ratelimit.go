package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"voice-todo-api/pkg/response"
)

const (
	rateLimiterMaxSources = 1000
	rateLimiterTTL        = time.Minute * 5
)

// rateLimiter keeps a per-client token bucket with auto-cleanup of idle
// sources via the expiring LRU.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](rateLimiterMaxSources, nil, rateLimiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles requests per client IP. Zero or negative
// requestsPerMin disables the limiter.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.cfg.HTTPServer.RateLimitPerMin
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	rl := newRateLimiter(perMin)
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware: rate limit exceeded for %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			return
		}
		c.Next()
	}
}
