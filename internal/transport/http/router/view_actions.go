package router

import (
	"strings"

	"github.com/gin-gonic/gin"

	"studentrent/internal/domain"
	propfeat "studentrent/internal/feature/property"
	"studentrent/internal/notify"
	viewrouter "studentrent/internal/router"
	"studentrent/internal/store"
	httpez "studentrent/internal/transport/http/ez"
)

// navChrome 每次导航后重建的导航栏状态
type navChrome struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user"`
}

type viewModel struct {
	Route              string           `json:"route"`
	Requested          string           `json:"requested"`
	Redirected         bool             `json:"redirected"`
	Nav                navChrome        `json:"nav"`
	Notifications      []notify.Message `json:"notifications"`
	SimulatedLatencyMs int              `json:"simulated_latency_ms"`
	Data               gin.H            `json:"data"`
}

// ---------- GET /view/*token：视图路由面 ----------

func mountViewActions(view *gin.RouterGroup, d Deps) {
	ez := httpez.New(view)

	ez.GET("/view/*token", func(c *gin.Context) (any, error) {
		token := strings.Trim(c.Param("token"), "/")

		// 显式会话优先走请求身份（JWT），退回 store 里的会话记录
		sess := principalFrom(c, d.Store)
		if sess == nil {
			sess = d.Store.GetSession()
		}

		res := viewrouter.Resolve(token, sess)
		vm := viewModel{
			Route:              res.Route.String(),
			Requested:          res.Requested.String(),
			Redirected:         res.Redirected,
			Nav:                navChrome{Authenticated: sess != nil, User: sess},
			Notifications:      d.Notifier.Drain(),
			SimulatedLatencyMs: int(d.SimulatedLatency.Milliseconds()),
			Data:               viewData(res.Route, sess, d),
		}
		return vm, nil
	})
}

// viewData 每个视图要带的数据负载
func viewData(route viewrouter.Route, sess *domain.User, d Deps) gin.H {
	switch route {
	case viewrouter.Home:
		return gin.H{"featured": d.Property.Featured(6)}
	case viewrouter.Listings:
		return gin.H{"properties": d.Property.List(propfeat.Filters{})}
	case viewrouter.Login:
		return gin.H{"demo_accounts": gin.H{
			"student":  gin.H{"email": store.DemoTenantEmail, "password": store.DemoPassword, "role": domain.RoleTenant},
			"landlord": gin.H{"email": store.DemoLandlordEmail, "password": store.DemoPassword, "role": domain.RoleLandlord},
		}}
	case viewrouter.Signup:
		return gin.H{}
	case viewrouter.Tenant:
		return gin.H{"liked": d.Property.ListLikedBy(sess)}
	case viewrouter.Landlord:
		return gin.H{"mine": d.Property.ListByLandlord(sess)}
	default:
		return gin.H{}
	}
}
