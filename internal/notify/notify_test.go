package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushDrain(t *testing.T) {
	n := New(time.Minute)
	n.Success("Login successful!")
	n.Error("boom")
	n.Info("bye")

	msgs := n.Drain()
	require.Len(t, msgs, 3)
	assert.Equal(t, LevelSuccess, msgs[0].Level)
	assert.Equal(t, "Login successful!", msgs[0].Text)
	assert.Equal(t, LevelError, msgs[1].Level)
	assert.Equal(t, LevelInfo, msgs[2].Level)

	// Drain 清空队列
	assert.Empty(t, n.Drain())
}

func TestDrainDropsExpired(t *testing.T) {
	n := New(time.Minute)
	base := time.Now()
	n.now = func() time.Time { return base }

	n.Info("old")
	n.now = func() time.Time { return base.Add(30 * time.Second) }
	n.Info("fresh")

	// 再过 45 秒：old 已超 TTL，fresh 还在
	n.now = func() time.Time { return base.Add(75 * time.Second) }
	msgs := n.Drain()
	require.Len(t, msgs, 1)
	assert.Equal(t, "fresh", msgs[0].Text)
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	n := New(0)
	assert.Equal(t, DefaultTTL, n.ttl)
}
