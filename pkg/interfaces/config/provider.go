// Package config 定义配置提供者接口
//
// 各领域配置包（internal/config/...）负责默认值与用户配置的合并，
// Provider 只是把合并后的 Options 交给各模块。
package config

import (
	adapterconfig "github.com/weisyn/wallet-adapter/internal/config/adapter"
	eventconfig "github.com/weisyn/wallet-adapter/internal/config/event"
	identityconfig "github.com/weisyn/wallet-adapter/internal/config/identity"
	logconfig "github.com/weisyn/wallet-adapter/internal/config/log"
	metricsconfig "github.com/weisyn/wallet-adapter/internal/config/metrics"
	badgerconfig "github.com/weisyn/wallet-adapter/internal/config/storage/badger"
	fileconfig "github.com/weisyn/wallet-adapter/internal/config/storage/file"
	memoryconfig "github.com/weisyn/wallet-adapter/internal/config/storage/memory"
	redisconfig "github.com/weisyn/wallet-adapter/internal/config/storage/redis"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

// Provider 配置提供者
type Provider interface {
	// GetAdapter 适配器配置（审批源、弹窗尺寸、超时）
	GetAdapter() *adapterconfig.AdapterOptions
	// GetIdentity 身份缓存配置（后端、缓存键）
	GetIdentity() *identityconfig.IdentityOptions
	GetBadger() *badgerconfig.BadgerOptions
	GetFile() *fileconfig.FileOptions
	GetMemory() *memoryconfig.MemoryOptions
	GetRedis() *redisconfig.RedisOptions
	GetLog() *logconfig.LogOptions
	GetEvent() *eventconfig.EventOptions
	GetMetrics() *metricsconfig.MetricsOptions

	// GetAppConfig 原始用户配置，可能为 nil
	GetAppConfig() *types.AppConfig
}
