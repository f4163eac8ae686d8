package types

import (
	"errors"
	"fmt"
)

// UnknownErrorMessage 无法从底层错误提取消息时使用
const UnknownErrorMessage = "Unknown Error"

// WalletErrorKind 钱包错误类别
type WalletErrorKind string

const (
	WalletErrorNotConnected    WalletErrorKind = "WalletNotConnectedError"
	WalletErrorConnection      WalletErrorKind = "WalletConnectionError"
	WalletErrorPublicKey       WalletErrorKind = "WalletPublicKeyError"
	WalletErrorSignTransaction WalletErrorKind = "WalletSignTransactionError"
	WalletErrorSignMessage     WalletErrorKind = "WalletSignMessageError"
)

// WalletError 适配器对调用方暴露的唯一错误类型
//
// 所有内部/协作方错误在流程边界被归一化为以下类别之一，原始错误保存在 Cause 中。
type WalletError struct {
	Kind    WalletErrorKind
	Message string
	Cause   error
}

// 哨兵错误，用于 errors.Is 按类别匹配
var (
	ErrWalletNotConnected    = &WalletError{Kind: WalletErrorNotConnected}
	ErrWalletConnection      = &WalletError{Kind: WalletErrorConnection}
	ErrWalletPublicKey       = &WalletError{Kind: WalletErrorPublicKey}
	ErrWalletSignTransaction = &WalletError{Kind: WalletErrorSignTransaction}
	ErrWalletSignMessage     = &WalletError{Kind: WalletErrorSignMessage}
)

func (e *WalletError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap 返回底层错误
func (e *WalletError) Unwrap() error {
	return e.Cause
}

// Is 同类别即视为匹配
func (e *WalletError) Is(target error) bool {
	t, ok := target.(*WalletError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewWalletError 创建指定类别的钱包错误
func NewWalletError(kind WalletErrorKind, message string, cause error) *WalletError {
	return &WalletError{Kind: kind, Message: message, Cause: cause}
}

// NewNotConnectedError 创建未连接错误
func NewNotConnectedError(message string) *WalletError {
	return NewWalletError(WalletErrorNotConnected, message, nil)
}

// NewConnectionError 创建连接错误
func NewConnectionError(message string, cause error) *WalletError {
	return NewWalletError(WalletErrorConnection, message, cause)
}

// NewPublicKeyError 创建公钥错误
func NewPublicKeyError(message string, cause error) *WalletError {
	return NewWalletError(WalletErrorPublicKey, message, cause)
}

// NewSignTransactionError 创建交易签名错误
func NewSignTransactionError(message string, cause error) *WalletError {
	return NewWalletError(WalletErrorSignTransaction, message, cause)
}

// NewSignMessageError 创建消息签名错误
func NewSignMessageError(message string, cause error) *WalletError {
	return NewWalletError(WalletErrorSignMessage, message, cause)
}

// IsWalletError 判断 err 链上是否已是钱包错误
func IsWalletError(err error) bool {
	var we *WalletError
	return errors.As(err, &we)
}

// AsWalletError 将任意错误归一化为指定类别
//
// 已是钱包错误的原样返回；否则包装为 kind，消息取自原始错误。
func AsWalletError(err error, kind WalletErrorKind) error {
	if err == nil {
		return nil
	}
	if IsWalletError(err) {
		return err
	}
	msg := err.Error()
	if msg == "" {
		msg = UnknownErrorMessage
	}
	return NewWalletError(kind, msg, err)
}
