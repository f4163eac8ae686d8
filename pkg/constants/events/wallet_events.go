// Package events 提供钱包适配器的事件类型常量定义
//
// 命名规范：domain.action
//
// ```go
// eventBus.Subscribe(events.EventTypeWalletConnect, func(e types.WalletConnectedEvent) { ... })
// ```
package events

import (
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/event"
)

// EventType 全局事件类型别名，兼容标准事件接口
type EventType = event.EventType

const (
	// EventTypeWalletConnect 连接成功，数据为 types.WalletConnectedEvent
	EventTypeWalletConnect EventType = "wallet.connect"

	// EventTypeWalletDisconnect 已断开，无数据
	EventTypeWalletDisconnect EventType = "wallet.disconnect"

	// EventTypeWalletError 操作失败，数据为 types.WalletErrorEvent
	EventTypeWalletError EventType = "wallet.error"
)
