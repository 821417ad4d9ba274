package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const KeyRequestID = "X-Request-ID"

// RequestID 贯穿一次请求的追踪 id：客户端带了就沿用，没带就生成。
// 响应头和访问日志的 rid 字段用同一个值，排查时能对上。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(KeyRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(KeyRequestID, rid)
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Next()
	}
}
