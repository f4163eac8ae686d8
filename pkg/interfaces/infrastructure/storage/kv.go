// Package storage 提供钱包适配器的键值存储接口定义
//
// 🗄️ **键值存储 (Key-Value Store)**
//
// 身份缓存只需要最小的键值能力：按键读取、写入、删除。
// 四种后端实现位于 internal/core/infrastructure/storage：
// - badger：磁盘持久化，跨进程重启保留（默认）
// - file：每个键一个文件，无需额外依赖的持久化
// - memory：基于 BigCache 的进程内缓存
// - redis：多进程共享
package storage

import "context"

// KVStore 通用键值存储接口
type KVStore interface {
	// Get 读取键值；键不存在时 exists 为 false 且 err 为 nil
	Get(ctx context.Context, key string) (value []byte, exists bool, err error)

	// Set 写入键值，覆盖已有值
	Set(ctx context.Context, key string, value []byte) error

	// Delete 删除键；键不存在不视为错误
	Delete(ctx context.Context, key string) error

	// Close 释放底层资源
	Close() error
}

// Backend 存储后端名称
type Backend string

const (
	BackendBadger Backend = "badger"
	BackendMemory Backend = "memory"
	BackendRedis  Backend = "redis"
	BackendFile   Backend = "file"
)
