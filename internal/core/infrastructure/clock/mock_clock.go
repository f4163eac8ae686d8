package clock

import (
	"sync"
	"time"

	infraClock "github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/clock"
)

// MockClock 测试用时钟，只在 Advance 时前进
//
// 弹窗处理函数与引擎运行在不同 goroutine，读写均加锁。
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
}

var _ infraClock.Clock = (*MockClock)(nil)

func NewMockClock(initial time.Time) *MockClock { return &MockClock{currentTime: initial} }

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

// Advance 推进时间
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.currentTime = c.currentTime.Add(d)
	c.mu.Unlock()
}
