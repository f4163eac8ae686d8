// Package identity 定义身份缓存接口
package identity

import "context"

// Cache 持久化的公钥身份缓存
//
// 只保存一个条目：上一次连接成功时公钥的规范字符串。
// 条目缺失表示“未连接”。
type Cache interface {
	// Load 读取缓存的公钥字符串
	Load(ctx context.Context) (pubkey string, ok bool, err error)
	// Store 写入公钥字符串
	Store(ctx context.Context, pubkey string) error
	// Clear 清除缓存
	Clear(ctx context.Context) error
}
