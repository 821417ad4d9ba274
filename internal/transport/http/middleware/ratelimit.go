package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	resp "studentrent/internal/transport/http/response"
)

// RateLimit 全局令牌桶限速
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if lim.Allow() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeServerError, "too many requests"))
	}
}

// ipBuckets 每 IP 一个令牌桶。空闲超过 ttl 的条目在下次访问时顺手清掉，
// map 不会随着来过的 IP 无限增长。
type ipBuckets struct {
	mu        sync.Mutex
	rps       rate.Limit
	burst     int
	ttl       time.Duration
	entries   map[string]*ipBucket
	lastSweep time.Time
	now       func() time.Time // 测试注入
}

type ipBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func newIPBuckets(rps rate.Limit, burst int, ttl time.Duration) *ipBuckets {
	return &ipBuckets{
		rps:     rps,
		burst:   burst,
		ttl:     ttl,
		entries: make(map[string]*ipBucket),
		now:     time.Now,
	}
}

func (b *ipBuckets) get(ip string) *rate.Limiter {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	if now.Sub(b.lastSweep) > b.ttl {
		for k, e := range b.entries {
			if now.Sub(e.lastSeen) > b.ttl {
				delete(b.entries, k)
			}
		}
		b.lastSweep = now
	}
	e, ok := b.entries[ip]
	if !ok {
		e = &ipBucket{lim: rate.NewLimiter(b.rps, b.burst)}
		b.entries[ip] = e
	}
	e.lastSeen = now
	return e.lim
}

// RateLimitPerIP 每 IP 限速
func RateLimitPerIP(rps rate.Limit, burst int) gin.HandlerFunc {
	buckets := newIPBuckets(rps, burst, 10*time.Minute)
	return func(c *gin.Context) {
		if buckets.get(c.ClientIP()).Allow() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeServerError, "too many requests"))
	}
}
