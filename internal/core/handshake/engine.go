// Package handshake 实现弹窗握手协议引擎
//
// 🤝 **握手协议引擎 (Handshake Protocol Engine)**
//
// 每次调用方操作（连接、交易签名、消息签名）都由引擎驱动一个私有状态机：
//
//	Idle → AwaitingChannel → AwaitingResponse → Settled
//
// 引擎生成 nonce、打开弹窗通道、逐条消费连接上的入站消息，
// 遇到终止事件后关闭通道并恰好返回一次结果。
//
// 🔒 **并发约束**
// - 同一引擎上的操作串行执行（单槽信号量），后来者等待或随 ctx 放弃
// - 阻塞调用运行在调用方 goroutine 中，入站事件来自连接的消息通道
// - ctx 取消、操作超时与正常终止一样会关闭通道
package handshake

import (
	"context"
	"fmt"

	adapterconfig "github.com/weisyn/wallet-adapter/internal/config/adapter"
	clockimpl "github.com/weisyn/wallet-adapter/internal/core/infrastructure/clock"
	"github.com/weisyn/wallet-adapter/internal/core/nonce"
	handshakeInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/handshake"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/identity"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/clock"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/ledger"
	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

// KeyParser 把公钥字符串解析为公钥对象
type KeyParser func(s string) (*types.PublicKey, error)

// EngineParams 引擎依赖
type EngineParams struct {
	Channels popupInterface.ChannelManager
	Nonces   nonce.Generator
	Identity identity.Cache
	Codec    ledger.Codec
	Config   *adapterconfig.Config
	Logger   log.Logger

	// 可选
	Metrics   *Metrics
	KeyParser KeyParser
	Clock     clock.Clock
}

// Engine 握手协议引擎
type Engine struct {
	channels popupInterface.ChannelManager
	nonces   nonce.Generator
	identity identity.Cache
	codec    ledger.Codec
	config   *adapterconfig.Config
	logger   log.Logger
	metrics  *Metrics
	parseKey KeyParser
	clock    clock.Clock

	// slot 单槽信号量，保证同一时刻至多一个进行中的操作
	slot chan struct{}
}

var _ handshakeInterface.Engine = (*Engine)(nil)

// NewEngine 创建握手协议引擎
func NewEngine(params EngineParams) (*Engine, error) {
	if params.Channels == nil {
		return nil, fmt.Errorf("handshake engine requires a channel manager")
	}
	if params.Identity == nil {
		return nil, fmt.Errorf("handshake engine requires an identity cache")
	}
	if params.Codec == nil {
		return nil, fmt.Errorf("handshake engine requires a transaction codec")
	}
	if params.Nonces == nil {
		params.Nonces = nonce.UUIDGenerator{}
	}
	if params.Config == nil {
		params.Config = adapterconfig.New(nil)
	}
	if params.KeyParser == nil {
		params.KeyParser = types.ParsePublicKey
	}
	if params.Clock == nil {
		params.Clock = clockimpl.NewSystemClock()
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("handshake engine requires a logger")
	}
	return &Engine{
		channels: params.Channels,
		nonces:   params.Nonces,
		identity: params.Identity,
		codec:    params.Codec,
		config:   params.Config,
		logger:   params.Logger,
		metrics:  params.Metrics,
		parseKey: params.KeyParser,
		clock:    params.Clock,
		slot:     make(chan struct{}, 1),
	}, nil
}

// Connect 实现 Engine
//
// 身份缓存命中时直接恢复，不打开通道，也不占用操作槽。
func (e *Engine) Connect(ctx context.Context) (*handshakeInterface.ConnectResult, error) {
	start := e.clock.Now()
	cached, ok, err := e.identity.Load(ctx)
	if err != nil {
		// 读不到缓存按未连接处理，继续走弹窗审批
		e.logger.Warnf("读取身份缓存失败，改为弹窗审批: %v", err)
	}
	if ok {
		pk, err := e.parseKey(cached)
		if err != nil {
			werr := types.NewPublicKeyError(errorMessage(err), err)
			e.metrics.observe(opConnect, outcomeOf(werr), e.clock.Since(start))
			return nil, werr
		}
		e.logger.Infof("由身份缓存恢复连接: %s", cached)
		e.metrics.observe(opConnect, outcomeCacheHit, e.clock.Since(start))
		return &handshakeInterface.ConnectResult{PublicKey: pk, FromCache: true}, nil
	}
	return drive[*handshakeInterface.ConnectResult](ctx, e, &connectFlow{e: e})
}

// SignTransactions 实现 Engine
func (e *Engine) SignTransactions(ctx context.Context, txs []*types.Transaction) ([]*types.Transaction, error) {
	f, err := newSignTransactionsFlow(e, txs)
	if err != nil {
		werr := types.AsWalletError(err, types.WalletErrorSignTransaction)
		e.metrics.observe(opSignTransactions, outcomeOf(werr), 0)
		return nil, werr
	}
	return drive[[]*types.Transaction](ctx, e, f)
}

// SignMessage 实现 Engine
func (e *Engine) SignMessage(ctx context.Context, message []byte) ([]byte, error) {
	f, err := newSignMessageFlow(e, message)
	if err != nil {
		werr := types.AsWalletError(err, types.WalletErrorSignMessage)
		e.metrics.observe(opSignMessage, outcomeOf(werr), 0)
		return nil, werr
	}
	return drive[[]byte](ctx, e, f)
}

func (e *Engine) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case e.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) release() {
	<-e.slot
}

// errorMessage 提取错误消息，空消息回落到 Unknown Error
func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return types.UnknownErrorMessage
	}
	return err.Error()
}
