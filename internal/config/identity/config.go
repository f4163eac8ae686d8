// Package identity 提供身份缓存配置
package identity

import (
	"strings"

	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/storage"
	configtypes "github.com/weisyn/wallet-adapter/pkg/types"
)

// IdentityOptions 身份缓存配置选项
type IdentityOptions struct {
	Backend storage.Backend `json:"backend"` // badger | file | memory | redis
	// StorageKey 缓存条目的固定键；与浏览器版本保持一致，便于共享同一后端
	StorageKey string `json:"storage_key"`
}

// Config 身份缓存配置实现
type Config struct {
	options *IdentityOptions
}

// New 创建身份缓存配置，userConfig 为 *types.UserStorageConfig
func New(userConfig interface{}) *Config {
	options := &IdentityOptions{
		Backend:    defaultBackend,
		StorageKey: defaultStorageKey,
	}
	if c, ok := userConfig.(*configtypes.UserStorageConfig); ok && c != nil {
		if c.Backend != nil && *c.Backend != "" {
			options.Backend = storage.Backend(strings.ToLower(*c.Backend))
		}
	}
	return &Config{options: options}
}

// GetOptions 获取完整的身份缓存配置选项
func (c *Config) GetOptions() *IdentityOptions {
	return c.options
}

// GetBackend 存储后端
func (c *Config) GetBackend() storage.Backend {
	return c.options.Backend
}

// GetStorageKey 缓存键
func (c *Config) GetStorageKey() string {
	return c.options.StorageKey
}

// NewFromOptions 从 IdentityOptions 创建配置实现
func NewFromOptions(options *IdentityOptions) *Config {
	if options == nil {
		return New(nil)
	}
	return &Config{options: options}
}
