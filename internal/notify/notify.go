// Package notify 暂存要展示给用户的一次性提示消息。
// 服务层 Push，视图层 Drain；过了 TTL 没被取走的自动丢弃。
package notify

import (
	"sync"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

type Message struct {
	Level     Level     `json:"level"`
	Text      string    `json:"text"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Notifier struct {
	mu    sync.Mutex
	ttl   time.Duration
	queue []Message
	now   func() time.Time // 测试注入
}

const DefaultTTL = 5 * time.Second

func New(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl, now: time.Now}
}

func (n *Notifier) Push(level Level, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.queue = append(n.queue, Message{
		Level:     level,
		Text:      text,
		ExpiresAt: n.now().Add(n.ttl),
	})
}

func (n *Notifier) Success(text string) { n.Push(LevelSuccess, text) }
func (n *Notifier) Error(text string)   { n.Push(LevelError, text) }
func (n *Notifier) Info(text string)    { n.Push(LevelInfo, text) }

// Drain 取走所有未过期消息并清空队列
func (n *Notifier) Drain() []Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	now := n.now()
	out := make([]Message, 0, len(n.queue))
	for _, m := range n.queue {
		if m.ExpiresAt.After(now) {
			out = append(out, m)
		}
	}
	n.queue = nil
	return out
}
