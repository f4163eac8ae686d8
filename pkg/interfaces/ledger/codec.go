// Package ledger 定义交易编解码接口
//
// 握手引擎只关心两件事：把待签名交易序列化成发给弹窗的消息字节，
// 以及把弹窗返回的已签名编码还原成交易对象。
package ledger

import "github.com/weisyn/wallet-adapter/pkg/types"

// Codec 交易编解码器
type Codec interface {
	// SerializeMessage 返回交易中需要签名的消息字节
	SerializeMessage(tx *types.Transaction) ([]byte, error)

	// Encode 返回交易（含签名）的线上编码
	Encode(tx *types.Transaction) ([]byte, error)

	// Populate 从线上编码还原交易
	Populate(encoded []byte) (*types.Transaction, error)
}
