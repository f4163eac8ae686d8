package popup

import (
	"context"
	"errors"
	"sync"

	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
)

// ErrConnectionClosed 连接已关闭
var ErrConnectionClosed = errors.New("popup connection closed")

const defaultPipeBuffer = 16

// pipe 一对进程内连接共享的状态
type pipe struct {
	mu     sync.RWMutex
	closed bool
	done   chan struct{}
	once   sync.Once

	toRemote chan popupInterface.Message
	toLocal  chan popupInterface.Message
}

// PipeConn 进程内连接的一端
//
// 任一端 Close 都会关闭整对连接，两端的 Messages 通道随之关闭。
type PipeConn struct {
	p   *pipe
	in  chan popupInterface.Message
	out chan popupInterface.Message
}

var _ popupInterface.Connection = (*PipeConn)(nil)

// NewPipe 创建一对相连的连接：local 交给引擎，remote 扮演弹窗
func NewPipe(buffer int) (local *PipeConn, remote *PipeConn) {
	if buffer <= 0 {
		buffer = defaultPipeBuffer
	}
	p := &pipe{
		done:     make(chan struct{}),
		toRemote: make(chan popupInterface.Message, buffer),
		toLocal:  make(chan popupInterface.Message, buffer),
	}
	local = &PipeConn{p: p, in: p.toLocal, out: p.toRemote}
	remote = &PipeConn{p: p, in: p.toRemote, out: p.toLocal}
	return local, remote
}

// Messages 实现 Connection
func (c *PipeConn) Messages() <-chan popupInterface.Message {
	return c.in
}

// Send 实现 Connection
func (c *PipeConn) Send(ctx context.Context, msg popupInterface.Message) error {
	c.p.mu.RLock()
	defer c.p.mu.RUnlock()
	if c.p.closed {
		return ErrConnectionClosed
	}
	select {
	case c.out <- msg:
		return nil
	case <-c.p.done:
		return ErrConnectionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close 实现 Connection，可重复调用
func (c *PipeConn) Close() error {
	c.p.close()
	return nil
}

// Closed 连接是否已关闭
func (c *PipeConn) Closed() bool {
	select {
	case <-c.p.done:
		return true
	default:
		return false
	}
}

func (p *pipe) close() {
	p.once.Do(func() {
		// 先唤醒阻塞中的 Send，再在写锁下关闭数据通道
		close(p.done)
		p.mu.Lock()
		p.closed = true
		close(p.toRemote)
		close(p.toLocal)
		p.mu.Unlock()
	})
}
