// Package validate 把弹窗发来的不可信负载解析为带类型的结构
//
// 每个 Parse 函数要么返回通过校验的负载，要么返回 *MismatchError，
// 其中携带期望的形状与实际收到的内容，供错误信息直接引用。
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// 期望形状描述，与授权方页面的约定保持一致
const (
	ApprovedShape                  = "{ solanaPublicKey: string }"
	TransactionSignatureReplyShape = "{ signedB58Transactions: string[] }"
	MessageSignatureReplyShape     = "{ decodedSignature: string }"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ApprovedPayload 连接审批通过的负载
type ApprovedPayload struct {
	SolanaPublicKey *string `json:"solanaPublicKey" validate:"required"`
}

// TransactionSignatureReply 交易签名应答负载
type TransactionSignatureReply struct {
	SignedB58Transactions []string `json:"signedB58Transactions" validate:"required"`
}

// MessageSignatureReply 消息签名应答负载
type MessageSignatureReply struct {
	DecodedSignature *string `json:"decodedSignature" validate:"required"`
}

// MismatchError 负载不符合期望形状
type MismatchError struct {
	Expected string
	// Received 实际负载的紧凑 JSON；负载缺失时为 "undefined"
	Received string
	Err      error
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("Expected %s but received %s", e.Expected, e.Received)
}

func (e *MismatchError) Unwrap() error {
	return e.Err
}

// ParseApproved 解析 SOLANA_WALLET_ADAPTER_APPROVED 负载
func ParseApproved(raw json.RawMessage) (*ApprovedPayload, error) {
	var p ApprovedPayload
	if err := parse(raw, &p, ApprovedShape); err != nil {
		return nil, err
	}
	return &p, nil
}

// ParseTransactionSignatureReply 解析 TRANSACTION_SIGNATURE_NEEDED_RESPONSE 负载
func ParseTransactionSignatureReply(raw json.RawMessage) (*TransactionSignatureReply, error) {
	var p TransactionSignatureReply
	if err := parse(raw, &p, TransactionSignatureReplyShape); err != nil {
		return nil, err
	}
	return &p, nil
}

// ParseMessageSignatureReply 解析 MESSAGE_SIGNATURE_NEEDED_RESPONSE 负载
func ParseMessageSignatureReply(raw json.RawMessage) (*MessageSignatureReply, error) {
	var p MessageSignatureReply
	if err := parse(raw, &p, MessageSignatureReplyShape); err != nil {
		return nil, err
	}
	return &p, nil
}

func parse(raw json.RawMessage, out interface{}, shape string) error {
	mismatch := func(err error) error {
		return &MismatchError{Expected: shape, Received: Describe(raw), Err: err}
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return mismatch(fmt.Errorf("payload is not an object"))
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return mismatch(err)
	}
	if err := validate.Struct(out); err != nil {
		return mismatch(err)
	}
	return nil
}

// Describe 返回负载的紧凑 JSON 形式，用于错误信息
func Describe(raw json.RawMessage) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "undefined"
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
