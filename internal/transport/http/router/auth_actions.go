package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studentrent/internal/domain"
	authfeat "studentrent/internal/feature/auth"
	httpez "studentrent/internal/transport/http/ez"
)

// ---------- /auth/login + /auth/register + /auth/logout ----------

func mountAuthActions(public *gin.RouterGroup, d Deps) {
	ez := httpez.New(public)

	// 登录不校验邮箱格式：任何字符串对都走凭据比对，失败统一 401
	type loginIn struct {
		Email    string `json:"email"    binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	type sessionOut struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}

	httpez.RegisterAction[loginIn, sessionOut](ez, httpez.Action[loginIn, sessionOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (sessionOut, error) {
			u, err := d.Auth.Login(c.Request.Context(), in.Email, in.Password)
			if err != nil {
				return sessionOut{}, err
			}
			tok, err := d.JWTer.Issue(u.ID, string(u.Role))
			if err != nil || tok == "" {
				return sessionOut{}, httpez.Internal("issue token failed", err)
			}
			return sessionOut{Token: tok, User: u}, nil
		},
	})

	type registerIn struct {
		Name     string `json:"name"     binding:"required,max=64"`
		Email    string `json:"email"    binding:"required"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role"     binding:"omitempty,oneof=tenant landlord"`
		Phone    string `json:"phone"    binding:"required"`
	}

	httpez.RegisterAction[registerIn, sessionOut](ez, httpez.Action[registerIn, sessionOut]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *registerIn) (sessionOut, error) {
			u, err := d.Auth.Register(c.Request.Context(), authfeat.RegisterInput{
				Name:     in.Name,
				Email:    in.Email,
				Password: in.Password,
				Role:     domain.Role(in.Role),
				Phone:    in.Phone,
			})
			if err != nil {
				return sessionOut{}, err
			}
			tok, err := d.JWTer.Issue(u.ID, string(u.Role))
			if err != nil || tok == "" {
				return sessionOut{}, httpez.Internal("issue token failed", err)
			}
			return sessionOut{Token: tok, User: u}, nil
		},
	})

	// 登出无条件成功，不要求 token
	httpez.RegisterAction[struct{}, gin.H](ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/auth/logout",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			d.Auth.Logout()
			return gin.H{}, nil
		},
	})
}
