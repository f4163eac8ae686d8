package handshake

import (
	"context"
	"sync"

	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

// opKind 操作类别
type opKind string

const (
	opConnect          opKind = "connect"
	opSignTransactions opKind = "sign_transactions"
	opSignMessage      opKind = "sign_message"
)

// errorKind 该类操作失败时归一化的钱包错误类别
func (k opKind) errorKind() types.WalletErrorKind {
	switch k {
	case opSignTransactions:
		return types.WalletErrorSignTransaction
	case opSignMessage:
		return types.WalletErrorSignMessage
	default:
		return types.WalletErrorConnection
	}
}

// state 操作状态
type state int

const (
	stateIdle state = iota
	stateAwaitingChannel
	stateAwaitingResponse
	stateSettled
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "Idle"
	case stateAwaitingChannel:
		return "AwaitingChannel"
	case stateAwaitingResponse:
		return "AwaitingResponse"
	case stateSettled:
		return "Settled"
	default:
		return "Unknown"
	}
}

// operation 一次进行中的操作
type operation struct {
	kind   opKind
	nonce  string
	state  state
	conn   popupInterface.Connection
	logger log.Logger
}

func (op *operation) transition(to state) {
	op.logger.Debugf("状态迁移: %s → %s", op.state, to)
	op.state = to
}

// attach 绑定新的连接，较新的连接取代旧连接
func (op *operation) attach(conn popupInterface.Connection) {
	op.conn = conn
	if op.state == stateAwaitingChannel {
		op.transition(stateAwaitingResponse)
	}
}

// send 通过当前连接发送一帧
func (op *operation) send(ctx context.Context, event popupInterface.EventType, payload interface{}) error {
	msg, err := popupInterface.NewMessage(event, payload)
	if err != nil {
		return err
	}
	return op.conn.Send(ctx, msg)
}

// flow 一类操作的协议细节
type flow[T any] interface {
	kind() opKind
	openConfig(nonce string) popupInterface.OpenConfig
	// handle 处理一条入站消息；done 为 true 或 err 非 nil 即为终止
	handle(ctx context.Context, op *operation, msg popupInterface.Message) (result T, done bool, err error)
}

// connSlot 接收通道管理器的连接更新
//
// 只保留最新的非 nil 连接；nil 更新被忽略。
type connSlot struct {
	mu     sync.Mutex
	latest popupInterface.Connection
	ready  chan struct{}
}

func newConnSlot() *connSlot {
	return &connSlot{ready: make(chan struct{}, 1)}
}

func (s *connSlot) offer(conn popupInterface.Connection) {
	if conn == nil {
		return
	}
	s.mu.Lock()
	s.latest = conn
	s.mu.Unlock()
	select {
	case s.ready <- struct{}{}:
	default:
	}
}

func (s *connSlot) take() popupInterface.Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	conn := s.latest
	s.latest = nil
	return conn
}

// drive 驱动一次操作直至终止
//
// 无论结果如何，打开过的通道都会在返回前被关闭一次，
// 返回的错误已归一化为该类操作的钱包错误。
func drive[T any](ctx context.Context, e *Engine, f flow[T]) (T, error) {
	var zero T
	kind := f.kind()
	start := e.clock.Now()

	if err := e.acquire(ctx); err != nil {
		werr := types.AsWalletError(err, kind.errorKind())
		e.metrics.observe(kind, outcomeOf(werr), e.clock.Since(start))
		return zero, werr
	}
	defer e.release()

	if timeout := e.config.GetOperationTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	op := &operation{kind: kind, nonce: e.nonces.New(), state: stateIdle}
	op.logger = e.logger.With("operation", string(kind), "nonce", op.nonce)

	e.metrics.begin()
	defer e.metrics.end()

	slot := newConnSlot()
	e.channels.OnConnectionUpdated(slot.offer)
	op.transition(stateAwaitingChannel)

	result, err := await(ctx, op, e.channels, f, slot)

	op.transition(stateSettled)
	e.channels.OnConnectionUpdated(nil)
	if cerr := e.channels.Close(); cerr != nil {
		op.logger.Warnf("关闭弹窗通道失败: %v", cerr)
	}

	err = types.AsWalletError(err, kind.errorKind())
	e.metrics.observe(kind, outcomeOf(err), e.clock.Since(start))
	if err != nil {
		op.logger.Warnf("操作被拒绝: %v", err)
		return zero, err
	}
	op.logger.Info("操作完成")
	return result, nil
}

// await 打开通道并消费入站消息，直到 flow 给出终止结果
func await[T any](ctx context.Context, op *operation, channels popupInterface.ChannelManager, f flow[T], slot *connSlot) (T, error) {
	var zero T
	cfg := f.openConfig(op.nonce)
	if err := channels.Open(ctx, cfg); err != nil {
		return zero, err
	}
	op.logger.Debugf("弹窗通道已打开: %s", cfg.URL)

	var inbound <-chan popupInterface.Message
	for {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()

		case <-slot.ready:
			if conn := slot.take(); conn != nil {
				op.attach(conn)
				inbound = conn.Messages()
			}

		case msg, ok := <-inbound:
			if !ok {
				// 消息流结束视同弹窗关闭
				inbound = nil
				msg = popupInterface.Message{Event: popupInterface.EventPopupClosed}
			}
			result, done, err := f.handle(ctx, op, msg)
			if err != nil {
				return zero, err
			}
			if done {
				return result, nil
			}
		}
	}
}

// ignore 记录不属于当前流程的事件
func ignore(op *operation, msg popupInterface.Message) {
	op.logger.Debugf("忽略事件: %s", msg.Event)
}
