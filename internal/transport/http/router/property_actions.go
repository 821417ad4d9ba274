package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studentrent/internal/domain"
	propfeat "studentrent/internal/feature/property"
	"studentrent/internal/refdata"
	httpez "studentrent/internal/transport/http/ez"
	"studentrent/pkg/utils"
)

// ---------- 房源查询 / 变更 ----------

func mountPropertyActions(public, authed *gin.RouterGroup, d Deps) {
	ezPublic := httpez.New(public)
	ezAuth := httpez.New(authed)

	// 列表：过滤条件全部来自 query
	type listOut struct {
		Total int                `json:"total"`
		Items []*domain.Property `json:"items"`
	}
	httpez.RegisterAction[propfeat.Filters, listOut](ezPublic, httpez.Action[propfeat.Filters, listOut]{
		Method: http.MethodGet,
		Path:   "/properties",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *propfeat.Filters) (listOut, error) {
			items := d.Property.List(*in)
			return listOut{Total: len(items), Items: items}, nil
		},
	})

	// 详情：每次渲染都计一次浏览
	type detailOut struct {
		Property     *domain.Property `json:"property"`
		PriceDisplay string           `json:"price_display"`
	}
	httpez.RegisterAction[struct{}, detailOut](ezPublic, httpez.Action[struct{}, detailOut]{
		Method: http.MethodGet,
		Path:   "/properties/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (detailOut, error) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil {
				return detailOut{}, httpez.BadRequest("invalid id")
			}
			d.Property.IncrementViews(id)
			p, err := d.Property.GetByID(id)
			if err != nil {
				return detailOut{}, err
			}
			return detailOut{Property: p, PriceDisplay: utils.FormatPrice(p.Price)}, nil
		},
	})

	// 精选：views+likes 降序
	type featuredQ struct {
		Limit int `form:"limit,default=6"`
	}
	httpez.RegisterAction[featuredQ, listOut](ezPublic, httpez.Action[featuredQ, listOut]{
		Method: http.MethodGet,
		Path:   "/featured",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *featuredQ) (listOut, error) {
			items := d.Property.Featured(in.Limit)
			return listOut{Total: len(items), Items: items}, nil
		},
	})

	// 州/城市参考数据（前端下拉框）
	ezPublic.GET("/locations", func(c *gin.Context) (any, error) {
		return refdata.Nigeria(), nil
	})

	// 发布房源：仅限房东
	type createIn struct {
		Title       string   `json:"title"       binding:"required,max=128"`
		Description string   `json:"description" binding:"required"`
		Price       int      `json:"price"       binding:"required,gt=0"`
		Type        string   `json:"type"        binding:"required"`
		Bedrooms    int      `json:"bedrooms"    binding:"gte=0"`
		Bathrooms   int      `json:"bathrooms"   binding:"gte=0"`
		State       string   `json:"state"       binding:"required"`
		City        string   `json:"city"        binding:"required"`
		Area        string   `json:"area"`
		Address     string   `json:"address"`
		Images      []string `json:"images"`
		Features    []string `json:"features"`
		Contact     string   `json:"contact"`
	}
	httpez.RegisterAction[createIn, *domain.Property](ezAuth, httpez.Action[createIn, *domain.Property]{
		Method: http.MethodPost,
		Path:   "/properties",
		Binder: httpez.BindJSON,
		Auth:   true,
		Roles:  []string{string(domain.RoleLandlord)},
		Handler: func(c *gin.Context, in *createIn) (*domain.Property, error) {
			principal := principalFrom(c, d.Store)
			p, err := d.Property.Create(c.Request.Context(), principal, propfeat.CreateInput{
				Title:       in.Title,
				Description: in.Description,
				Price:       in.Price,
				Type:        in.Type,
				Bedrooms:    in.Bedrooms,
				Bathrooms:   in.Bathrooms,
				State:       in.State,
				City:        in.City,
				Area:        in.Area,
				Address:     in.Address,
				Images:      in.Images,
				Features:    in.Features,
				Contact:     in.Contact,
			})
			if err != nil {
				return nil, err
			}
			return p, nil
		},
	})

	// 点赞切换。房源不存在也按成功返回（沿用原行为）
	type likeOut struct {
		Property *domain.Property `json:"property"`
		Liked    bool             `json:"liked"`
	}
	httpez.RegisterAction[struct{}, likeOut](ezAuth, httpez.Action[struct{}, likeOut]{
		Method: http.MethodPost,
		Path:   "/properties/:id/like",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (likeOut, error) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil {
				return likeOut{}, httpez.BadRequest("invalid id")
			}
			principal := principalFrom(c, d.Store)
			p, err := d.Property.Like(principal, id)
			if err != nil {
				return likeOut{}, err
			}
			out := likeOut{Property: p}
			if p != nil && principal != nil {
				out.Liked = p.LikedBy(principal.ID)
			}
			return out, nil
		},
	})

	// 我的房源（房东仪表盘数据源）
	httpez.RegisterAction[struct{}, listOut](ezAuth, httpez.Action[struct{}, listOut]{
		Method: http.MethodGet,
		Path:   "/my/properties",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (listOut, error) {
			items := d.Property.ListByLandlord(principalFrom(c, d.Store))
			return listOut{Total: len(items), Items: items}, nil
		},
	})
}
