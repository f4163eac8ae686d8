// Package identity 提供公钥身份缓存
//
// 缓存只有一个条目：固定键 → 上次连接成功时公钥的字符串形式。
// 条目存在时 Connect 直接恢复身份，不打开弹窗。
package identity

import (
	"context"
	"fmt"

	identityInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/identity"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/storage"
)

// DefaultStorageKey 缓存条目的固定键
const DefaultStorageKey = "RdxqNYxF"

// Cache 基于 KVStore 的身份缓存
type Cache struct {
	store  storage.KVStore
	key    string
	logger log.Logger
}

var _ identityInterface.Cache = (*Cache)(nil)

// New 创建身份缓存，key 为空时使用 DefaultStorageKey
func New(store storage.KVStore, key string, logger log.Logger) *Cache {
	if key == "" {
		key = DefaultStorageKey
	}
	return &Cache{
		store:  store,
		key:    key,
		logger: logger,
	}
}

// Load 读取缓存的公钥字符串；空值视为不存在
func (c *Cache) Load(ctx context.Context) (string, bool, error) {
	value, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return "", false, fmt.Errorf("load cached identity: %w", err)
	}
	if !ok || len(value) == 0 {
		return "", false, nil
	}
	return string(value), true, nil
}

// Store 写入公钥字符串
func (c *Cache) Store(ctx context.Context, pubkey string) error {
	if err := c.store.Set(ctx, c.key, []byte(pubkey)); err != nil {
		return fmt.Errorf("store cached identity: %w", err)
	}
	c.logger.Debugf("身份缓存已更新: %s", pubkey)
	return nil
}

// Clear 清除缓存
func (c *Cache) Clear(ctx context.Context) error {
	if err := c.store.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("clear cached identity: %w", err)
	}
	c.logger.Debug("身份缓存已清除")
	return nil
}
