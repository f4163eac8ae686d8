package event

import configtypes "github.com/weisyn/wallet-adapter/pkg/types"

// EventOptions 事件系统配置选项
type EventOptions struct {
	Enabled bool `json:"enabled"` // 是否启用事件系统；关闭时订阅与发布静默成功
}

// Config 事件配置实现
type Config struct {
	options *EventOptions
}

// New 创建事件配置实现
func New(userConfig interface{}) *Config {
	options := &EventOptions{Enabled: defaultEnabled}
	if c, ok := userConfig.(*configtypes.UserEventConfig); ok && c != nil {
		if c.Enabled != nil {
			options.Enabled = *c.Enabled
		}
	}
	return &Config{options: options}
}

// NewFromOptions 从 EventOptions 创建配置实现
func NewFromOptions(options *EventOptions) *Config {
	if options == nil {
		return New(nil)
	}
	return &Config{options: options}
}

// GetOptions 获取完整的事件配置选项
func (c *Config) GetOptions() *EventOptions {
	return c.options
}

// IsEnabled 是否启用事件系统
func (c *Config) IsEnabled() bool {
	return c.options.Enabled
}
