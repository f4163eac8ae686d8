package types

// EventType 事件类型
type EventType string

// WalletConnectedEvent 连接成功事件数据
type WalletConnectedEvent struct {
	PublicKey string `json:"public_key"`
	// FromCache 为 true 表示由身份缓存直接恢复，未打开弹窗
	FromCache bool `json:"from_cache"`
}

// WalletErrorEvent 钱包操作失败事件数据
type WalletErrorEvent struct {
	Operation string          `json:"operation"`
	Kind      WalletErrorKind `json:"kind"`
	Message   string          `json:"message"`
}
