// Package store 把整站状态持久化成单个 JSON 文件（users + properties），
// 会话单独存一个文件。没有外部数据库：整读整写，进程内串行。
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"studentrent/internal/domain"
)

// Data 持久化的主 blob，字段顺序即插入顺序
type Data struct {
	Users      []*domain.User     `json:"users"`
	Properties []*domain.Property `json:"properties"`
}

type Options struct {
	DataPath    string // 主 blob 路径，如 data/studentrent.json
	SessionPath string // 会话文件路径，如 data/session.json
}

type Store struct {
	opts Options
	log  *zap.Logger

	mu     sync.Mutex
	lastID int64 // NextID 单调保证
}

// New 建好数据目录；首次 Load 时才落种子数据
func New(opts Options, l *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(opts.DataPath), 0o755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(opts.SessionPath), 0o755); err != nil {
		return nil, err
	}
	return &Store{opts: opts, log: l}, nil
}

// Load 读主 blob。文件缺失或解析失败都按“不存在”处理：
// 写回种子数据并返回其副本（静默恢复，只打 warn）。
func (s *Store) Load() *Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() *Data {
	raw, err := os.ReadFile(s.opts.DataPath)
	if err == nil {
		var d Data
		if uerr := json.Unmarshal(raw, &d); uerr == nil {
			normalize(&d)
			return &d
		}
		s.log.Warn("store blob corrupt, reseeding", zap.String("path", s.opts.DataPath))
	}

	seed := seedData()
	if werr := s.writeLocked(seed); werr != nil {
		s.log.Warn("seed write failed", zap.Error(werr))
	}
	return seed
}

// Save 全量替换主 blob。只适合单写方场景；
// 并发下的读-改-写用 Update，否则两次 Load 之间会互相覆盖。
func (s *Store) Save(d *Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	normalize(d)
	return s.writeLocked(d)
}

// Update 在锁内完成 读-改-写：fn 收到当前 blob，改完落盘。
// fn 返回错误则放弃写入，blob 保持原样。
// 锁不可重入，fn 里不要再调 Store 的其它方法（NextID 要先取好）。
func (s *Store) Update(fn func(*Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.loadLocked()
	if err := fn(d); err != nil {
		return err
	}
	normalize(d)
	return s.writeLocked(d)
}

// 临时文件 + rename，避免写一半留下坏文件
func (s *Store) writeLocked(d *Data) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.opts.DataPath + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.opts.DataPath)
}

// GetSession 返回当前会话用户；没有或读不出来都算未登录
func (s *Store) GetSession() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.opts.SessionPath)
	if err != nil {
		return nil
	}
	var u domain.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil
	}
	return &u
}

// SetSession 写会话（密码先剥离）；传 nil 清除，幂等
func (s *Store) SetSession(u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		err := os.Remove(s.opts.SessionPath)
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	b, err := json.MarshalIndent(u.Stripped(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.opts.SessionPath, b, 0o644)
}

// NextID 时间戳派生的唯一 id。同一毫秒内多次取号时递增兜底，
// 不再有原实现 Date.now() 的碰撞风险。
func (s *Store) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// 反序列化后把 nil 切片补成空切片，序列化出来是 [] 而不是 null
func normalize(d *Data) {
	if d.Users == nil {
		d.Users = []*domain.User{}
	}
	if d.Properties == nil {
		d.Properties = []*domain.Property{}
	}
	for _, p := range d.Properties {
		if p.Images == nil {
			p.Images = []string{}
		}
		if p.Features == nil {
			p.Features = []string{}
		}
		if p.Likes == nil {
			p.Likes = []int64{}
		}
	}
}
