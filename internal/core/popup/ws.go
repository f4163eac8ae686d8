// Package popup 提供弹窗通道管理器的实现
//
// 🪟 **弹窗通道**
//
// - WSManager：经由授权方的 WebSocket 中继与弹窗页面交换事件
// - MemoryManager：进程内实现，弹窗由 PopupHandler 扮演
//
// 两者都保证同一时刻至多一个活动连接，Open 会替换并关闭之前的连接。
package popup

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	adapterconfig "github.com/weisyn/wallet-adapter/internal/config/adapter"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
)

const (
	relayPathFormat = "%s/wallet-adapter/relay/%s"
	writeTimeout    = 10 * time.Second
	messageBuffer   = 16
)

// WSManager 基于 WebSocket 中继的通道管理器
type WSManager struct {
	config   *adapterconfig.Config
	launcher Launcher
	dialer   *websocket.Dialer
	logger   log.Logger

	mu       sync.Mutex
	conn     *wsConn
	callback func(popupInterface.Connection)
}

var _ popupInterface.ChannelManager = (*WSManager)(nil)

// NewWSManager 创建中继通道管理器，launcher 为 nil 时使用 LogLauncher
func NewWSManager(config *adapterconfig.Config, launcher Launcher, logger log.Logger) *WSManager {
	if launcher == nil {
		launcher = NewLogLauncher(logger)
	}
	return &WSManager{
		config:   config,
		launcher: launcher,
		dialer: &websocket.Dialer{
			HandshakeTimeout: config.GetDialTimeout(),
		},
		logger: logger,
	}
}

// Open 实现 ChannelManager
//
// 先展示授权页面，再拨号 <relay>/wallet-adapter/relay/<nonce>；
// 拨号成功后通过回调交付连接。
func (m *WSManager) Open(ctx context.Context, cfg popupInterface.OpenConfig) error {
	m.closeCurrent()

	relay, err := m.config.GetRelayURL()
	if err != nil {
		return fmt.Errorf("resolve relay url: %w", err)
	}
	if err := m.launcher.Launch(ctx, cfg); err != nil {
		return fmt.Errorf("launch popup: %w", err)
	}

	endpoint := fmt.Sprintf(relayPathFormat, relay, cfg.Nonce)
	dialCtx := ctx
	if timeout := m.config.GetDialTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ws, resp, err := m.dialer.DialContext(dialCtx, endpoint, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("dial popup relay: %w", err)
	}
	m.logger.Debugf("弹窗中继已连接: %s", endpoint)

	conn := newWSConn(ws, m.logger.With("nonce", cfg.Nonce))

	m.mu.Lock()
	prev := m.conn
	m.conn = conn
	callback := m.callback
	m.mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	if callback != nil {
		callback(conn)
	}
	return nil
}

// Close 实现 ChannelManager
func (m *WSManager) Close() error {
	m.closeCurrent()
	m.mu.Lock()
	callback := m.callback
	m.mu.Unlock()
	if callback != nil {
		callback(nil)
	}
	return nil
}

// TearDown 实现 ChannelManager
func (m *WSManager) TearDown() error {
	err := m.Close()
	m.mu.Lock()
	m.callback = nil
	m.mu.Unlock()
	return err
}

// Connection 实现 ChannelManager
func (m *WSManager) Connection() popupInterface.Connection {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn == nil {
		return nil
	}
	return m.conn
}

// OnConnectionUpdated 实现 ChannelManager
func (m *WSManager) OnConnectionUpdated(fn func(popupInterface.Connection)) {
	m.mu.Lock()
	m.callback = fn
	m.mu.Unlock()
}

func (m *WSManager) closeCurrent() {
	m.mu.Lock()
	conn := m.conn
	m.conn = nil
	m.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
}

// wsConn 单个 nonce 的中继连接
type wsConn struct {
	ws       *websocket.Conn
	logger   log.Logger
	messages chan popupInterface.Message

	writeMu   sync.Mutex
	closeCh   chan struct{}
	closeOnce sync.Once
}

var _ popupInterface.Connection = (*wsConn)(nil)

func newWSConn(ws *websocket.Conn, logger log.Logger) *wsConn {
	c := &wsConn{
		ws:       ws,
		logger:   logger,
		messages: make(chan popupInterface.Message, messageBuffer),
		closeCh:  make(chan struct{}),
	}
	go c.readLoop()
	return c
}

// readLoop 读取中继帧并转成带类型的消息
//
// 中继意外断开时补发一条 POPUP_CLOSED，随后关闭消息通道。
func (c *wsConn) readLoop() {
	defer close(c.messages)

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			select {
			case <-c.closeCh:
				return
			default:
			}
			c.logger.Debugf("弹窗中继已断开: %v", err)
			select {
			case c.messages <- popupInterface.Message{Event: popupInterface.EventPopupClosed}:
			case <-c.closeCh:
			}
			return
		}

		var msg popupInterface.Message
		if err := json.Unmarshal(data, &msg); err != nil || msg.Event == "" {
			c.logger.Warnf("忽略无法解析的中继帧: %s", string(data))
			continue
		}

		select {
		case c.messages <- msg:
		case <-c.closeCh:
			return
		}
	}
}

// Messages 实现 Connection
func (c *wsConn) Messages() <-chan popupInterface.Message {
	return c.messages
}

// Send 实现 Connection
func (c *wsConn) Send(ctx context.Context, msg popupInterface.Message) error {
	select {
	case <-c.closeCh:
		return ErrConnectionClosed
	default:
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	deadline := time.Now().Add(writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.ws.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Close 实现 Connection，可重复调用
func (c *wsConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closeCh)
		c.writeMu.Lock()
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		c.writeMu.Unlock()
		err = c.ws.Close()
	})
	return err
}
