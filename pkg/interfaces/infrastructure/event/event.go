// Package event 提供钱包适配器的事件总线接口定义
//
// 适配器在连接建立、断开和出错时发布生命周期事件，
// 调用方（CLI、嵌入方应用）通过订阅这些事件感知钱包状态变化。
package event

import "github.com/weisyn/wallet-adapter/pkg/types"

// 兼容别名
type EventType = types.EventType

// EventBus 事件总线接口
type EventBus interface {
	// Subscribe 订阅事件
	Subscribe(eventType EventType, handler interface{}) error
	// SubscribeAsync 异步订阅事件
	SubscribeAsync(eventType EventType, handler interface{}, transactional bool) error
	// SubscribeOnce 一次性订阅事件
	SubscribeOnce(eventType EventType, handler interface{}) error
	// Unsubscribe 取消订阅
	Unsubscribe(eventType EventType, handler interface{}) error
	// Publish 发布事件
	Publish(eventType EventType, args ...interface{})
	// HasCallback 检查是否有回调函数
	HasCallback(eventType EventType) bool
	// WaitAsync 等待所有异步处理完成
	WaitAsync()
}
