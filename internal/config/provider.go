package config

import (
	"github.com/weisyn/wallet-adapter/internal/config/adapter"
	"github.com/weisyn/wallet-adapter/internal/config/event"
	"github.com/weisyn/wallet-adapter/internal/config/identity"
	"github.com/weisyn/wallet-adapter/internal/config/log"
	"github.com/weisyn/wallet-adapter/internal/config/metrics"
	"github.com/weisyn/wallet-adapter/internal/config/storage/badger"
	"github.com/weisyn/wallet-adapter/internal/config/storage/file"
	"github.com/weisyn/wallet-adapter/internal/config/storage/memory"
	"github.com/weisyn/wallet-adapter/internal/config/storage/redis"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/config"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

// Provider 实现配置提供者接口
type Provider struct {
	appConfig *types.AppConfig
}

// NewProvider 创建配置提供者，appConfig 为 nil 时全部使用默认值
func NewProvider(appConfig *types.AppConfig) config.Provider {
	return &Provider{
		appConfig: appConfig,
	}
}

// GetAdapter 获取适配器配置
func (p *Provider) GetAdapter() *adapter.AdapterOptions {
	var userAdapterConfig *types.UserAdapterConfig
	if p.appConfig != nil && p.appConfig.Adapter != nil {
		userAdapterConfig = p.appConfig.Adapter
	}
	return adapter.New(userAdapterConfig).GetOptions()
}

// GetIdentity 获取身份缓存配置
func (p *Provider) GetIdentity() *identity.IdentityOptions {
	return identity.New(p.userStorage()).GetOptions()
}

// GetBadger 获取BadgerDB配置
func (p *Provider) GetBadger() *badger.BadgerOptions {
	return badger.New(p.userStorage()).GetOptions()
}

// GetFile 获取文件存储配置
func (p *Provider) GetFile() *file.FileOptions {
	return file.New(p.userStorage()).GetOptions()
}

// GetMemory 获取内存存储配置
func (p *Provider) GetMemory() *memory.MemoryOptions {
	return memory.New(p.userStorage()).GetOptions()
}

// GetRedis 获取Redis配置
func (p *Provider) GetRedis() *redis.RedisOptions {
	return redis.New(p.userStorage()).GetOptions()
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *log.LogOptions {
	var userLogConfig *types.UserLogConfig
	if p.appConfig != nil && p.appConfig.Log != nil {
		userLogConfig = p.appConfig.Log
	}
	return log.New(userLogConfig).GetOptions()
}

// GetEvent 获取事件配置
func (p *Provider) GetEvent() *event.EventOptions {
	var userEventConfig *types.UserEventConfig
	if p.appConfig != nil && p.appConfig.Event != nil {
		userEventConfig = p.appConfig.Event
	}
	return event.New(userEventConfig).GetOptions()
}

// GetMetrics 获取指标配置
func (p *Provider) GetMetrics() *metrics.MetricsOptions {
	var userMetricsConfig *types.UserMetricsConfig
	if p.appConfig != nil && p.appConfig.Metrics != nil {
		userMetricsConfig = p.appConfig.Metrics
	}
	return metrics.New(userMetricsConfig).GetOptions()
}

// GetAppConfig 获取原始用户配置
func (p *Provider) GetAppConfig() *types.AppConfig {
	return p.appConfig
}

func (p *Provider) userStorage() *types.UserStorageConfig {
	if p.appConfig == nil {
		return nil
	}
	return p.appConfig.Storage
}
