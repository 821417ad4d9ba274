package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studentrent/internal/core/auth"
	resp "studentrent/internal/transport/http/response"
)

const (
	KeyUserID = "userId"
	KeyRole   = "role"
)

// AuthJWT 必须带合法 token；requireRole 非空时还要求角色匹配
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, j)
		if !ok {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "missing or invalid token"))
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeForbidden, "forbidden"))
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}

// OptionalAuthJWT 有 token 就解析身份，没有也放行（视图路由用）
func OptionalAuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c, j); ok {
			c.Set(KeyUserID, claims.UID)
			c.Set(KeyRole, claims.Role)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, j *auth.JWTer) (*auth.Claims, bool) {
	ah := c.GetHeader("Authorization")
	if !strings.HasPrefix(ah, "Bearer ") {
		return nil, false
	}
	claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
	if err != nil {
		return nil, false
	}
	return claims, true
}
