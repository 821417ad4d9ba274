// Package property 房源的查询与变更。
// 访问控制直接做在查询/写入口上，没有独立的授权层。
package property

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"studentrent/internal/domain"
	"studentrent/internal/notify"
	"studentrent/internal/store"
)

// FilterAll 下拉框的“全部”哨兵值，等价于未选
const FilterAll = "all"

type Filters struct {
	Search      string `form:"search"`
	State       string `form:"state"`
	City        string `form:"city"`
	Type        string `form:"type"`
	MinPrice    int    `form:"min_price"`
	MaxPrice    int    `form:"max_price"`
	MinBedrooms int    `form:"bedrooms"`
}

type Service struct {
	store    *store.Store
	notifier *notify.Notifier
	log      *zap.Logger
	latency  time.Duration
}

func NewService(st *store.Store, n *notify.Notifier, l *zap.Logger, latency time.Duration) *Service {
	return &Service{store: st, notifier: n, log: l, latency: latency}
}

type CreateInput struct {
	Title       string
	Description string
	Price       int
	Type        string
	Bedrooms    int
	Bathrooms   int
	State       string
	City        string
	Area        string
	Address     string
	Images      []string
	Features    []string
	Contact     string
}

// List 过滤条件按 AND 组合；不传任何条件就原序返回全集
func (s *Service) List(f Filters) []*domain.Property {
	props := s.store.Load().Properties
	out := make([]*domain.Property, 0, len(props))
	for _, p := range props {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p *domain.Property, f Filters) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) &&
			!strings.Contains(strings.ToLower(p.Area), term) &&
			!strings.Contains(strings.ToLower(p.City), term) &&
			!strings.Contains(strings.ToLower(p.State), term) {
			return false
		}
	}
	if f.State != "" && f.State != FilterAll && p.State != f.State {
		return false
	}
	if f.City != "" && f.City != FilterAll && p.City != f.City {
		return false
	}
	if f.Type != "" && f.Type != FilterAll && p.Type != f.Type {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.MinBedrooms > 0 && p.Bedrooms < f.MinBedrooms {
		return false
	}
	return true
}

func (s *Service) GetByID(id int64) (*domain.Property, error) {
	for _, p := range s.store.Load().Properties {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListByLandlord 非房东（或未登录）拿到空列表，这就是访问控制
func (s *Service) ListByLandlord(principal *domain.User) []*domain.Property {
	if !principal.IsLandlord() {
		return []*domain.Property{}
	}
	props := s.store.Load().Properties
	out := make([]*domain.Property, 0)
	for _, p := range props {
		if p.LandlordID == principal.ID {
			out = append(out, p)
		}
	}
	return out
}

// ListLikedBy 租客仪表盘：当前用户点过赞的房源
func (s *Service) ListLikedBy(principal *domain.User) []*domain.Property {
	if principal == nil {
		return []*domain.Property{}
	}
	out := make([]*domain.Property, 0)
	for _, p := range s.store.Load().Properties {
		if p.LikedBy(principal.ID) {
			out = append(out, p)
		}
	}
	return out
}

// Create 仅限房东；新房源插到最前面（列表默认最新优先）
func (s *Service) Create(ctx context.Context, principal *domain.User, in CreateInput) (*domain.Property, error) {
	if !principal.IsLandlord() {
		s.notifier.Error("Only landlords can create properties")
		return nil, domain.ErrNotLandlord
	}
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	p := &domain.Property{
		ID:           s.store.NextID(),
		Title:        in.Title,
		Description:  in.Description,
		Price:        in.Price,
		Type:         in.Type,
		Bedrooms:     in.Bedrooms,
		Bathrooms:    in.Bathrooms,
		State:        in.State,
		City:         in.City,
		Area:         in.Area,
		Address:      in.Address,
		Images:       in.Images,
		LandlordID:   principal.ID,
		LandlordName: principal.Name,
		Features:     in.Features,
		Contact:      in.Contact,
		CreatedAt:    time.Now().Format(domain.DateLayout),
		Status:       domain.StatusAvailable,
		Likes:        []int64{},
		Views:        0,
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}

	err := s.store.Update(func(d *store.Data) error {
		d.Properties = append([]*domain.Property{p}, d.Properties...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifier.Success("Property listed successfully!")
	s.log.Info("property created", zap.Int64("id", p.ID), zap.Int64("landlord_id", principal.ID))
	return p, nil
}

// Like 切换点赞。房源或用户缺失时静默跳过，不算错误。
func (s *Service) Like(principal *domain.User, id int64) (*domain.Property, error) {
	if principal == nil {
		return nil, nil
	}
	var out *domain.Property
	err := s.store.Update(func(d *store.Data) error {
		for _, p := range d.Properties {
			if p.ID != id {
				continue
			}
			if p.LikedBy(principal.ID) {
				keep := p.Likes[:0]
				for _, uid := range p.Likes {
					if uid != principal.ID {
						keep = append(keep, uid)
					}
				}
				p.Likes = keep
				s.notifier.Info("Property unliked")
			} else {
				p.Likes = append(p.Likes, principal.ID)
				s.notifier.Success("Property liked!")
			}
			out = p
			return nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IncrementViews 详情页每渲染一次 +1，不去重
func (s *Service) IncrementViews(id int64) {
	err := s.store.Update(func(d *store.Data) error {
		for _, p := range d.Properties {
			if p.ID == id {
				p.Views++
				return nil
			}
		}
		return nil
	})
	if err != nil {
		s.log.Warn("views save failed", zap.Error(err))
	}
}

// Featured 按 views+likes 降序，稳定排序保证同分保持原序
func (s *Service) Featured(limit int) []*domain.Property {
	if limit <= 0 {
		limit = 6
	}
	props := s.store.Load().Properties
	sorted := append([]*domain.Property(nil), props...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score() > sorted[j].Score()
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func (s *Service) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
