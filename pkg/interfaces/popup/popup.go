// Package popup 定义适配器与弹窗（钱包授权方）之间的通道接口
//
// 🪟 **弹窗通道 (Popup Channel)**
//
// ChannelManager 在同一时刻至多持有一个活动的 Connection。
// 每次 Open 都会替换之前的连接，并通过单槽回调 OnConnectionUpdated
// 通知当前持有者：参数要么是新的活动连接，要么是 nil（连接已关闭）。
//
// Connection 以带类型的消息流暴露入站事件，握手引擎逐条消费，
// 遇到终止事件后即停止读取。
package popup

import (
	"context"
	"encoding/json"
)

// EventType 通道事件名称（线上格式）
type EventType string

const (
	// 弹窗 → 适配器
	EventApproved                        EventType = "SOLANA_WALLET_ADAPTER_APPROVED"
	EventDenied                          EventType = "SOLANA_WALLET_ADAPTER_DENIED"
	EventPopupClosed                     EventType = "POPUP_CLOSED"
	EventAuthLoaded                      EventType = "AUTH_LOADED"
	EventTransactionSignatureNeededReply EventType = "TRANSACTION_SIGNATURE_NEEDED_RESPONSE"
	EventMessageSignatureNeededReply     EventType = "MESSAGE_SIGNATURE_NEEDED_RESPONSE"
	EventTransactionDenied               EventType = "TRANSACTION_DENIED"

	// 适配器 → 弹窗
	EventTransactionSignatureNeeded EventType = "TRANSACTION_SIGNATURE_NEEDED"
	EventMessageSignatureNeeded     EventType = "MESSAGE_SIGNATURE_NEEDED"
)

// Message 通道上的一帧消息
//
// 线上格式：{"event": "<NAME>", "payload": {...}}，payload 可缺省。
// Payload 来自不可信的弹窗，使用前必须经过 validate 包解析。
type Message struct {
	Event   EventType       `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage 构造一帧消息，payload 为 nil 时不携带负载
func NewMessage(event EventType, payload interface{}) (Message, error) {
	msg := Message{Event: event}
	if payload == nil {
		return msg, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	msg.Payload = raw
	return msg, nil
}

// Connection 绑定到单个 nonce 的双向通道
type Connection interface {
	// Messages 返回入站消息流；连接关闭后通道被关闭
	Messages() <-chan Message

	// Send 向弹窗发送一帧消息
	Send(ctx context.Context, msg Message) error

	// Close 关闭连接，可重复调用
	Close() error
}

// OpenConfig 打开通道的配置
//
// HeightPx / WidthPx 为 0 表示未指定，由通道管理器自行决定。
type OpenConfig struct {
	Nonce    string
	URL      string
	HeightPx int
	WidthPx  int
}

// ChannelManager 弹窗通道管理器
type ChannelManager interface {
	// Open 打开绑定到 cfg.Nonce 的新通道，替换已有通道
	//
	// 连接建立是异步的：就绪后通过 OnConnectionUpdated 注册的回调交付。
	Open(ctx context.Context, cfg OpenConfig) error

	// Close 关闭当前通道（保留回调注册）
	Close() error

	// TearDown 彻底拆除：关闭通道并清除回调
	TearDown() error

	// Connection 返回当前活动连接，没有时返回 nil
	Connection() Connection

	// OnConnectionUpdated 注册单槽回调，后注册的覆盖先注册的
	OnConnectionUpdated(fn func(Connection))
}
