package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	coreauth "studentrent/internal/core/auth"
	"studentrent/internal/domain"
	authfeat "studentrent/internal/feature/auth"
	propfeat "studentrent/internal/feature/property"
	"studentrent/internal/notify"
	"studentrent/internal/store"
	mdw "studentrent/internal/transport/http/middleware"
)

// Deps 路由挂载需要的全部依赖，main 里组好传进来
type Deps struct {
	Log      *zap.Logger
	Store    *store.Store
	Notifier *notify.Notifier
	Auth     *authfeat.Service
	Property *propfeat.Service
	JWTer    *coreauth.JWTer

	SimulatedLatency time.Duration
}

func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(100),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 公共分组（无需登录）
	public := api.Group("")

	// 登录/注册单独收紧：每 IP 限速，防爆破
	authPub := api.Group("")
	authPub.Use(mdw.RateLimitPerIP(5, 10))

	// 鉴权分组
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(d.JWTer, ""))

	// 视图路由：身份可有可无
	view := api.Group("")
	view.Use(mdw.OptionalAuthJWT(d.JWTer))

	mountAuthActions(authPub, d)
	mountPropertyActions(public, authed, d)
	mountViewActions(view, d)

	return r
}

// principalFrom 从 JWT 身份拿到完整用户档案（密码已剥离）。
// 用户已被删除时返回 nil——悬空会话按未登录处理。
func principalFrom(c *gin.Context, st *store.Store) *domain.User {
	uid := c.GetInt64(mdw.KeyUserID)
	if uid == 0 {
		return nil
	}
	for _, u := range st.Load().Users {
		if u.ID == uid {
			return u.Stripped()
		}
	}
	return nil
}
