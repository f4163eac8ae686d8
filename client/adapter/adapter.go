// Package adapter 提供弹窗钱包适配器的对外门面
//
// 门面持有内存中的公钥身份，在签名前做就绪检查，
// 并把所有失败归一化为 types.WalletError 后返回给调用方。
// 连接、断开和失败都会作为生命周期事件发布到事件总线。
package adapter

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	adapterconfig "github.com/weisyn/wallet-adapter/internal/config/adapter"
	logimpl "github.com/weisyn/wallet-adapter/internal/core/infrastructure/log"
	"github.com/weisyn/wallet-adapter/pkg/constants/events"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/handshake"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/identity"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

// NotConnectedMessage 未连接时签名的错误消息
const NotConnectedMessage = "`publicKey` is null. Did you forget to call `.connect()`?"

// 操作名称，用于错误事件
const (
	OperationConnect             = "connect"
	OperationDisconnect          = "disconnect"
	OperationSignTransaction     = "sign_transaction"
	OperationSignAllTransactions = "sign_all_transactions"
	OperationSignMessage         = "sign_message"
)

// Params 适配器依赖
type Params struct {
	Engine   handshake.Engine
	Channels popup.ChannelManager
	Identity identity.Cache
	Config   *adapterconfig.Config
	Logger   log.Logger
	// Events 可选，为 nil 时不发布事件
	Events event.EventBus
}

// Adapter 弹窗钱包适配器
type Adapter struct {
	engine   handshake.Engine
	channels popup.ChannelManager
	identity identity.Cache
	config   *adapterconfig.Config
	logger   log.Logger
	events   event.EventBus

	mu         sync.RWMutex
	publicKey  *types.PublicKey
	connecting atomic.Int32
}

// New 创建适配器
func New(params Params) *Adapter {
	cfg := params.Config
	if cfg == nil {
		cfg = adapterconfig.New(nil)
	}
	logger := params.Logger
	if logger == nil {
		logger = logimpl.NewNop()
	}
	return &Adapter{
		engine:   params.Engine,
		channels: params.Channels,
		identity: params.Identity,
		config:   cfg,
		logger:   logger,
		events:   params.Events,
	}
}

// Name 钱包展示名称
func (a *Adapter) Name() string {
	return a.config.GetName()
}

// URL 钱包授权方地址
func (a *Adapter) URL() string {
	return a.config.GetAuthorityOrigin()
}

// PublicKey 当前公钥，未连接时为 nil
func (a *Adapter) PublicKey() *types.PublicKey {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.publicKey
}

// Connected 是否已连接
func (a *Adapter) Connected() bool {
	return a.PublicKey() != nil
}

// Connecting 是否有连接操作进行中
func (a *Adapter) Connecting() bool {
	return a.connecting.Load() > 0
}

// Connect 建立连接
//
// 身份缓存命中时不会打开弹窗。
func (a *Adapter) Connect(ctx context.Context) error {
	a.connecting.Add(1)
	defer a.connecting.Add(-1)

	result, err := a.engine.Connect(ctx)
	if err != nil {
		return a.fail(OperationConnect, err, types.WalletErrorConnection)
	}

	a.mu.Lock()
	a.publicKey = result.PublicKey
	a.mu.Unlock()

	a.logger.Infof("钱包已连接: %s", result.PublicKey)
	a.publish(events.EventTypeWalletConnect, types.WalletConnectedEvent{
		PublicKey: result.PublicKey.String(),
		FromCache: result.FromCache,
	})
	return nil
}

// Disconnect 断开连接
//
// 彻底拆除通道管理器，并清除内存和缓存中的身份。清理失败只记录日志。
func (a *Adapter) Disconnect(ctx context.Context) error {
	if err := a.channels.TearDown(); err != nil {
		a.logger.Warnf("拆除弹窗通道失败: %v", err)
	}

	a.mu.Lock()
	a.publicKey = nil
	a.mu.Unlock()

	if err := a.identity.Clear(ctx); err != nil {
		a.logger.Warnf("清除身份缓存失败: %v", err)
	}

	a.logger.Info("钱包已断开")
	a.publish(events.EventTypeWalletDisconnect)
	return nil
}

// SignTransaction 签名单笔交易
func (a *Adapter) SignTransaction(ctx context.Context, tx *types.Transaction) (*types.Transaction, error) {
	signed, err := a.signTransactions(ctx, OperationSignTransaction, []*types.Transaction{tx})
	if err != nil {
		return nil, err
	}
	return signed[0], nil
}

// SignAllTransactions 批量签名交易，结果与输入顺序一致
func (a *Adapter) SignAllTransactions(ctx context.Context, txs []*types.Transaction) ([]*types.Transaction, error) {
	return a.signTransactions(ctx, OperationSignAllTransactions, txs)
}

func (a *Adapter) signTransactions(ctx context.Context, operation string, txs []*types.Transaction) ([]*types.Transaction, error) {
	if err := a.checkReadiness(); err != nil {
		return nil, a.fail(operation, err, types.WalletErrorSignTransaction)
	}
	signed, err := a.engine.SignTransactions(ctx, txs)
	if err != nil {
		return nil, a.fail(operation, err, types.WalletErrorSignTransaction)
	}
	return signed, nil
}

// SignMessage 签名任意消息
func (a *Adapter) SignMessage(ctx context.Context, message []byte) ([]byte, error) {
	if err := a.checkReadiness(); err != nil {
		return nil, a.fail(OperationSignMessage, err, types.WalletErrorSignMessage)
	}
	signature, err := a.engine.SignMessage(ctx, message)
	if err != nil {
		return nil, a.fail(OperationSignMessage, err, types.WalletErrorSignMessage)
	}
	return signature, nil
}

func (a *Adapter) checkReadiness() error {
	if a.PublicKey() == nil {
		return types.NewNotConnectedError(NotConnectedMessage)
	}
	return nil
}

// fail 归一化错误并发布错误事件
func (a *Adapter) fail(operation string, err error, kind types.WalletErrorKind) error {
	err = types.AsWalletError(err, kind)
	var we *types.WalletError
	if !errors.As(err, &we) {
		we = &types.WalletError{Kind: kind, Message: err.Error()}
	}
	a.logger.Warnf("%s 失败: %v", operation, err)
	a.publish(events.EventTypeWalletError, types.WalletErrorEvent{
		Operation: operation,
		Kind:      we.Kind,
		Message:   we.Message,
	})
	return err
}

func (a *Adapter) publish(eventType event.EventType, args ...interface{}) {
	if a.events == nil {
		return
	}
	a.events.Publish(eventType, args...)
}
