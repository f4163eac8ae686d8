// Package handshake 定义握手协议引擎接口
//
// 引擎为每一次调用方操作驱动一个私有状态机：
// 打开弹窗通道 → 交换事件 → 校验不可信负载 → 恰好一次地返回结果。
// 返回的错误均已归一化为 types.WalletError。
package handshake

import (
	"context"

	"github.com/weisyn/wallet-adapter/pkg/types"
)

// ConnectResult 连接结果
type ConnectResult struct {
	PublicKey *types.PublicKey
	// FromCache 为 true 表示由身份缓存恢复，没有打开通道
	FromCache bool
}

// Engine 握手协议引擎
type Engine interface {
	// Connect 执行连接流程
	Connect(ctx context.Context) (*ConnectResult, error)

	// SignTransactions 执行交易签名流程，结果与输入顺序一致
	SignTransactions(ctx context.Context, txs []*types.Transaction) ([]*types.Transaction, error)

	// SignMessage 执行消息签名流程
	SignMessage(ctx context.Context, message []byte) ([]byte, error)
}
