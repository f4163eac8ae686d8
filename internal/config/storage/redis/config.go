// Package redis 提供 Redis 身份缓存后端配置
package redis

import (
	"time"

	configtypes "github.com/weisyn/wallet-adapter/pkg/types"
)

// RedisOptions Redis 连接配置选项
type RedisOptions struct {
	Addr        string        `json:"addr"`
	Password    string        `json:"password"`
	DB          int           `json:"db"`
	KeyPrefix   string        `json:"key_prefix"` // 所有键的前缀，多个适配器共享实例时用于隔离
	DialTimeout time.Duration `json:"dial_timeout"`
}

// Config Redis 配置实现
type Config struct {
	options *RedisOptions
}

// New 创建 Redis 配置，userConfig 为 *types.UserStorageConfig
func New(userConfig interface{}) *Config {
	options := &RedisOptions{
		Addr:        defaultAddr,
		DB:          defaultDB,
		KeyPrefix:   defaultKeyPrefix,
		DialTimeout: defaultDialTimeout,
	}
	if c, ok := userConfig.(*configtypes.UserStorageConfig); ok && c != nil {
		if c.RedisAddr != nil {
			options.Addr = *c.RedisAddr
		}
		if c.RedisPassword != nil {
			options.Password = *c.RedisPassword
		}
		if c.RedisDB != nil {
			options.DB = *c.RedisDB
		}
		if c.KeyPrefix != nil {
			options.KeyPrefix = *c.KeyPrefix
		}
	}
	return &Config{options: options}
}

// NewFromOptions 从 RedisOptions 创建配置实现
func NewFromOptions(options *RedisOptions) *Config {
	if options == nil {
		return New(nil)
	}
	return &Config{options: options}
}

// GetOptions 获取完整的 Redis 配置选项
func (c *Config) GetOptions() *RedisOptions {
	return c.options
}

func (c *Config) GetAddr() string {
	return c.options.Addr
}

func (c *Config) GetPassword() string {
	return c.options.Password
}

func (c *Config) GetDB() int {
	return c.options.DB
}

// GetKeyPrefix 键前缀
func (c *Config) GetKeyPrefix() string {
	return c.options.KeyPrefix
}

func (c *Config) GetDialTimeout() time.Duration {
	return c.options.DialTimeout
}
