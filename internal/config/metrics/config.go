// Package metrics 提供 Prometheus 指标配置
package metrics

import configtypes "github.com/weisyn/wallet-adapter/pkg/types"

// MetricsOptions 指标配置选项
type MetricsOptions struct {
	Enabled   bool   `json:"enabled"`
	Namespace  string `json:"namespace"`   // 指标名前缀
	ListenAddr string `json:"listen_addr"` // 导出地址，为空时不启动 HTTP 导出
	Path       string `json:"path"`
}

// Config 指标配置实现
type Config struct {
	options *MetricsOptions
}

// New 创建指标配置实现
func New(userConfig interface{}) *Config {
	options := &MetricsOptions{
		Enabled:   defaultEnabled,
		Namespace: defaultNamespace,
		Path:      defaultPath,
	}
	if c, ok := userConfig.(*configtypes.UserMetricsConfig); ok && c != nil {
		if c.Enabled != nil {
			options.Enabled = *c.Enabled
		}
		if c.Namespace != nil {
			options.Namespace = *c.Namespace
		}
		if c.ListenAddr != nil {
			options.ListenAddr = *c.ListenAddr
		}
	}
	return &Config{options: options}
}

// GetOptions 获取完整的指标配置选项
func (c *Config) GetOptions() *MetricsOptions {
	return c.options
}

// IsEnabled 是否启用指标
func (c *Config) IsEnabled() bool {
	return c.options.Enabled
}

// GetNamespace 指标名前缀
func (c *Config) GetNamespace() string {
	return c.options.Namespace
}

// GetListenAddr 导出地址
func (c *Config) GetListenAddr() string {
	return c.options.ListenAddr
}

// GetPath 导出路径
func (c *Config) GetPath() string {
	if c.options.Path == "" {
		return defaultPath
	}
	return c.options.Path
}

// NewFromOptions 从 MetricsOptions 创建配置实现
func NewFromOptions(options *MetricsOptions) *Config {
	if options == nil {
		return New(nil)
	}
	return &Config{options: options}
}
