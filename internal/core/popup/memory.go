package popup

import (
	"context"
	"sync"

	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
)

// PopupHandler 扮演弹窗的一方
//
// 每次 Open 都会在独立 goroutine 中以打开配置和远端连接调用一次。
type PopupHandler func(cfg popupInterface.OpenConfig, remote *PipeConn)

// MemoryManager 进程内通道管理器
//
// 弹窗由 PopupHandler 在同一进程内扮演，适用于测试和内嵌授权页面的宿主。
type MemoryManager struct {
	handler PopupHandler
	logger  log.Logger

	mu       sync.Mutex
	conn     *PipeConn
	callback func(popupInterface.Connection)
	opened   []popupInterface.OpenConfig
	closes   int
	teardown int
}

var _ popupInterface.ChannelManager = (*MemoryManager)(nil)

// NewMemoryManager 创建进程内通道管理器，handler 可为 nil
func NewMemoryManager(handler PopupHandler, logger log.Logger) *MemoryManager {
	return &MemoryManager{
		handler: handler,
		logger:  logger,
	}
}

// Open 实现 ChannelManager
func (m *MemoryManager) Open(ctx context.Context, cfg popupInterface.OpenConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	local, remote := NewPipe(defaultPipeBuffer)

	m.mu.Lock()
	prev := m.conn
	m.conn = local
	m.opened = append(m.opened, cfg)
	callback := m.callback
	m.mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	m.logger.Debugf("打开进程内弹窗通道: nonce=%s url=%s", cfg.Nonce, cfg.URL)

	if m.handler != nil {
		go m.handler(cfg, remote)
	}
	if callback != nil {
		callback(local)
	}
	return nil
}

// Close 实现 ChannelManager
func (m *MemoryManager) Close() error {
	m.mu.Lock()
	conn := m.conn
	m.conn = nil
	m.closes++
	callback := m.callback
	m.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
	if callback != nil {
		callback(nil)
	}
	return nil
}

// TearDown 实现 ChannelManager
func (m *MemoryManager) TearDown() error {
	m.mu.Lock()
	m.teardown++
	m.mu.Unlock()

	err := m.Close()

	m.mu.Lock()
	m.callback = nil
	m.mu.Unlock()
	return err
}

// Connection 实现 ChannelManager
func (m *MemoryManager) Connection() popupInterface.Connection {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn == nil {
		return nil
	}
	return m.conn
}

// OnConnectionUpdated 实现 ChannelManager
func (m *MemoryManager) OnConnectionUpdated(fn func(popupInterface.Connection)) {
	m.mu.Lock()
	m.callback = fn
	m.mu.Unlock()
}

// Opened 返回历次 Open 的配置
func (m *MemoryManager) Opened() []popupInterface.OpenConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]popupInterface.OpenConfig, len(m.opened))
	copy(out, m.opened)
	return out
}

// CloseCount Close 被调用的次数（含 TearDown 触发的）
func (m *MemoryManager) CloseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closes
}

// TearDownCount TearDown 被调用的次数
func (m *MemoryManager) TearDownCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.teardown
}
