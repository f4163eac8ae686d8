// Package ledger 提供交易的线上编码
//
// 已签名交易的编码采用 protobuf wire 格式：
//
//	field 1 (bytes)          交易消息
//	field 2 (bytes, repeated) 签名，按签名者顺序
//
// 与弹窗交换时，编码结果再做一次 Base58 转换（见 EncodeB58 / DecodeB58）。
package ledger

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"google.golang.org/protobuf/encoding/protowire"

	ledgerInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/ledger"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

const (
	fieldMessage   protowire.Number = 1
	fieldSignature protowire.Number = 2
)

var (
	// ErrEmptyMessage 交易消息为空
	ErrEmptyMessage = errors.New("transaction message is empty")
	// ErrInvalidBase58 非法 Base58 字符串
	ErrInvalidBase58 = errors.New("invalid base58 string")
)

// Codec 默认交易编解码器
type Codec struct{}

var _ ledgerInterface.Codec = Codec{}

// NewCodec 创建编解码器
func NewCodec() Codec {
	return Codec{}
}

// SerializeMessage 返回需要签名的消息字节（副本）
func (Codec) SerializeMessage(tx *types.Transaction) ([]byte, error) {
	if tx == nil || len(tx.Message) == 0 {
		return nil, ErrEmptyMessage
	}
	out := make([]byte, len(tx.Message))
	copy(out, tx.Message)
	return out, nil
}

// Encode 编码交易（含签名）
func (Codec) Encode(tx *types.Transaction) ([]byte, error) {
	if tx == nil || len(tx.Message) == 0 {
		return nil, ErrEmptyMessage
	}
	var b []byte
	b = protowire.AppendTag(b, fieldMessage, protowire.BytesType)
	b = protowire.AppendBytes(b, tx.Message)
	for _, sig := range tx.Signatures {
		b = protowire.AppendTag(b, fieldSignature, protowire.BytesType)
		b = protowire.AppendBytes(b, sig)
	}
	return b, nil
}

// Populate 从编码还原交易；未知字段被跳过
func (Codec) Populate(encoded []byte) (*types.Transaction, error) {
	tx := &types.Transaction{}
	b := encoded
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("decode transaction tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldMessage && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return nil, fmt.Errorf("decode transaction message: %w", protowire.ParseError(m))
			}
			tx.Message = append([]byte(nil), v...)
			b = b[m:]
		case num == fieldSignature && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return nil, fmt.Errorf("decode transaction signature: %w", protowire.ParseError(m))
			}
			tx.Signatures = append(tx.Signatures, append([]byte(nil), v...))
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return nil, fmt.Errorf("skip field %d: %w", num, protowire.ParseError(m))
			}
			b = b[m:]
		}
	}
	if len(tx.Message) == 0 {
		return nil, ErrEmptyMessage
	}
	return tx, nil
}

// EncodeB58 Base58 编码
func EncodeB58(b []byte) string {
	return base58.Encode(b)
}

// DecodeB58 Base58 解码，非法字符或空串返回 ErrInvalidBase58
func DecodeB58(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrInvalidBase58
	}
	b := base58.Decode(s)
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBase58, s)
	}
	return b, nil
}
