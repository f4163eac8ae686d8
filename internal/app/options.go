package app

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/weisyn/wallet-adapter/internal/core/popup"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/config"
	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

// Option 应用程序选项函数类型
type Option func(*options)

// options 应用程序选项
// 实现config.AppOptions接口
type options struct {
	// 配置文件路径；为空或文件不存在时使用默认配置
	configFilePath string

	// 嵌入的配置内容（优先级高于configFilePath）
	embeddedConfig []byte

	// 用户配置（优先级最高）
	appConfig *types.AppConfig

	// 授权页面启动器，nil 时记录日志提示用户打开
	launcher popup.Launcher

	// 自定义通道管理器，设置后不再创建 WebSocket 中继管理器
	channels popupInterface.ChannelManager

	// 指标注册表，nil 时使用 prometheus 默认注册表
	registerer prometheus.Registerer
}

// 编译时校验options是否实现了config.AppOptions接口
var _ config.AppOptions = (*options)(nil)

// WithConfigFile 设置配置文件路径
func WithConfigFile(configPath string) Option {
	return func(o *options) {
		o.configFilePath = configPath
	}
}

// WithEmbeddedConfig 设置嵌入的配置内容（优先级高于WithConfigFile）
func WithEmbeddedConfig(configBytes []byte) Option {
	return func(o *options) {
		o.embeddedConfig = configBytes
	}
}

// WithAppConfig 直接使用给定配置（优先级最高）
func WithAppConfig(appConfig *types.AppConfig) Option {
	return func(o *options) {
		o.appConfig = appConfig
	}
}

// WithLauncher 设置授权页面启动器
func WithLauncher(launcher popup.Launcher) Option {
	return func(o *options) {
		o.launcher = launcher
	}
}

// WithChannelManager 使用自定义通道管理器，如进程内的 popup.MemoryManager
func WithChannelManager(channels popupInterface.ChannelManager) Option {
	return func(o *options) {
		o.channels = channels
	}
}

// WithRegisterer 设置指标注册表
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = registerer
	}
}

// newOptions 创建选项
func newOptions(opts ...Option) *options {
	options := &options{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// GetAppConfig 返回应用程序配置
func (o *options) GetAppConfig() *types.AppConfig {
	return o.appConfig
}
