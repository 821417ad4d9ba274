package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIPBucketsEvictIdleEntries(t *testing.T) {
	b := newIPBuckets(1, 1, time.Minute)
	base := time.Now()
	b.now = func() time.Time { return base }

	for i := 0; i < 100; i++ {
		b.get(fmt.Sprintf("10.0.0.%d", i))
	}
	assert.Len(t, b.entries, 100)

	// 全部空闲超过 ttl，下一次访问触发清扫
	b.now = func() time.Time { return base.Add(2 * time.Minute) }
	b.get("10.0.0.1")
	assert.Len(t, b.entries, 1)
}

func TestIPBucketsKeepActiveEntries(t *testing.T) {
	b := newIPBuckets(1, 1, time.Minute)
	base := time.Now()
	b.now = func() time.Time { return base }
	b.get("a")

	b.now = func() time.Time { return base.Add(50 * time.Second) }
	b.get("b")

	// a 已空闲 70 秒被清，b 才 20 秒还在
	b.now = func() time.Time { return base.Add(70 * time.Second) }
	b.get("c")
	assert.Len(t, b.entries, 2)
	assert.NotContains(t, b.entries, "a")
	assert.Contains(t, b.entries, "b")
}

func TestRateLimitPerIPRejectsBurstOverflow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitPerIP(1, 2))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	allowed, rejected := 0, 0
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Body.String() == "ok" {
			allowed++
		} else {
			rejected++
			assert.Contains(t, w.Body.String(), "too many requests")
		}
	}
	assert.Equal(t, 2, allowed)
	assert.Equal(t, 2, rejected)
}
