package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"quicksched/pkg/response"
)

const (
	maxTrackedClients = 1000
	limiterTTL        = 5 * time.Minute
)

// clientLimiter keeps one token bucket per client IP. Idle clients expire so
// the map does not grow without bound.
type clientLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newClientLimiter(requestsPerMin int) *clientLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &clientLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (cl *clientLimiter) allow(key string) bool {
	limiter, ok := cl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(cl.rate, cl.burst)
		cl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit rejects requests that exceed the per-client budget with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: client %s throttled", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
