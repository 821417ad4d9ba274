// Package auth 登录 / 注册 / 登出。
// 依赖全部显式注入，不走全局单例；会话落在 store 的独立文件里。
package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"studentrent/internal/domain"
	"studentrent/internal/notify"
	"studentrent/internal/store"
	"studentrent/internal/validate"
	"studentrent/pkg/utils"
)

type Service struct {
	store    *store.Store
	notifier *notify.Notifier
	log      *zap.Logger
	latency  time.Duration // 模拟网络往返，0 表示关闭
}

func NewService(st *store.Store, n *notify.Notifier, l *zap.Logger, latency time.Duration) *Service {
	return &Service{store: st, notifier: n, log: l, latency: latency}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	Phone    string
}

// Login 按 email 线性查找，bcrypt 比对。
// 成功写会话（剥离密码）并返回；失败不改任何状态。
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	data := s.store.Load()
	for _, u := range data.Users {
		if u.Email == email && utils.CheckPassword(password, u.Password) {
			stripped := u.Stripped()
			if err := s.store.SetSession(stripped); err != nil {
				s.log.Warn("session write failed", zap.Error(err))
			}
			s.notifier.Success("Login successful!")
			s.log.Info("login", zap.Int64("user_id", u.ID), zap.String("role", string(u.Role)))
			return stripped, nil
		}
	}

	s.notifier.Error("Invalid email or password")
	return nil, domain.ErrInvalidCredentials
}

// Register 查重 → 校验 → 建档 → 持久化 → 写会话。
// 邮箱查重是精确大小写匹配，和原行为一致。
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = domain.RoleTenant
	}
	// 哈希和取号都在锁外做，锁内只剩查重 + 追加
	newUser := &domain.User{
		ID:        s.store.NextID(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  utils.HashPassword(in.Password),
		Role:      role,
		Phone:     in.Phone,
		CreatedAt: time.Now().Format(domain.DateLayout),
	}

	err := s.store.Update(func(d *store.Data) error {
		for _, u := range d.Users {
			if u.Email == in.Email {
				s.notifier.Error("User with this email already exists")
				return domain.ErrDuplicateEmail
			}
		}
		if !validate.Email(in.Email) {
			s.notifier.Error("Please enter a valid email address")
			return domain.ErrInvalidEmail
		}
		if !validate.Phone(in.Phone) {
			s.notifier.Error("Please enter a valid Nigerian phone number")
			return domain.ErrInvalidPhone
		}
		d.Users = append(d.Users, newUser)
		return nil
	})
	if err != nil {
		return nil, err
	}

	stripped := newUser.Stripped()
	if err := s.store.SetSession(stripped); err != nil {
		s.log.Warn("session write failed", zap.Error(err))
	}
	s.notifier.Success("Account created successfully!")
	s.log.Info("register", zap.Int64("user_id", newUser.ID), zap.String("role", string(role)))
	return stripped, nil
}

// Logout 无条件清会话，幂等
func (s *Service) Logout() {
	if err := s.store.SetSession(nil); err != nil {
		s.log.Warn("session clear failed", zap.Error(err))
		return
	}
	s.notifier.Info("Logged out successfully")
}

// CurrentSession 每次导航后刷新导航栏时都会重读
func (s *Service) CurrentSession() *domain.User {
	return s.store.GetSession()
}

// 延迟期间取消则中止；否则照常完成并落地效果
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
