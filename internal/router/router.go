// Package router 视图路由状态机：token -> 视图，带角色守卫。
// 纯函数，不碰存储；会话由调用方传入。
package router

import "studentrent/internal/domain"

// Route 封闭枚举，未知 token 在 Parse 就折叠成 Home
type Route int

const (
	Home Route = iota
	Listings
	Login
	Signup
	Tenant
	Landlord
)

func (r Route) String() string {
	switch r {
	case Home:
		return "home"
	case Listings:
		return "listings"
	case Login:
		return "login"
	case Signup:
		return "signup"
	case Tenant:
		return "tenant"
	case Landlord:
		return "landlord"
	default:
		return "home"
	}
}

// Parse 未知 token 回落到 Home，不报错
func Parse(token string) Route {
	switch token {
	case "listings":
		return Listings
	case "login":
		return Login
	case "signup":
		return Signup
	case "tenant":
		return Tenant
	case "landlord":
		return Landlord
	default:
		return Home
	}
}

// Resolution 一次导航的结果。守卫失败时 Route 变成 Login，
// 不保留回跳地址——登录后按角色落到各自仪表盘。
type Resolution struct {
	Requested  Route
	Route      Route
	Redirected bool
}

// Resolve 进入 tenant/landlord 前检查“有会话且角色匹配”
func Resolve(token string, session *domain.User) Resolution {
	req := Parse(token)
	res := Resolution{Requested: req, Route: req}
	switch req {
	case Tenant:
		if !session.IsTenant() {
			res.Route = Login
			res.Redirected = true
		}
	case Landlord:
		if !session.IsLandlord() {
			res.Route = Login
			res.Redirected = true
		}
	case Home, Listings, Login, Signup:
		// 公开视图，直接放行
	}
	return res
}
