// Package adapter 提供钱包适配器（握手引擎与门面）的配置
package adapter

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	configtypes "github.com/weisyn/wallet-adapter/pkg/types"
)

// AdapterOptions 适配器配置选项
type AdapterOptions struct {
	// === 基础配置 ===
	Name            string `json:"name"`             // 钱包展示名称
	AuthorityOrigin string `json:"authority_origin"` // 审批页面所在源，如 https://fractal.is
	// RelayURL 弹窗中继基地址；为空时由 AuthorityOrigin 推导（https→wss, http→ws）
	RelayURL string `json:"relay_url"`

	// === 弹窗尺寸 ===
	MinPopupHeightPx int `json:"min_popup_height_px"`
	MaxPopupWidthPx  int `json:"max_popup_width_px"`
	ViewportWidthPx  int `json:"viewport_width_px"`  // 调用方可用视口宽度
	ViewportHeightPx int `json:"viewport_height_px"` // 调用方可用视口高度

	// === 超时 ===
	// OperationTimeout 单次操作超时；0 表示不限，操作一直等待终止事件
	OperationTimeout time.Duration `json:"operation_timeout"`
	DialTimeout      time.Duration `json:"dial_timeout"`
}

// Config 适配器配置实现
type Config struct {
	options *AdapterOptions
}

// New 创建适配器配置，userConfig 为 *types.UserAdapterConfig
func New(userConfig interface{}) *Config {
	defaultOptions := createDefaultAdapterOptions()
	if userConfig != nil {
		applyUserAdapterConfig(defaultOptions, userConfig)
	}
	return &Config{options: defaultOptions}
}

// NewFromOptions 从 AdapterOptions 创建配置实现
func NewFromOptions(options *AdapterOptions) *Config {
	if options == nil {
		return New(nil)
	}
	return &Config{options: options}
}

func createDefaultAdapterOptions() *AdapterOptions {
	return &AdapterOptions{
		Name:             defaultName,
		AuthorityOrigin:  defaultAuthorityOrigin,
		MinPopupHeightPx: defaultMinPopupHeightPx,
		MaxPopupWidthPx:  defaultMaxPopupWidthPx,
		ViewportWidthPx:  defaultViewportWidthPx,
		ViewportHeightPx: defaultViewportHeightPx,
		OperationTimeout: defaultOperationTimeout,
		DialTimeout:      defaultDialTimeout,
	}
}

func applyUserAdapterConfig(options *AdapterOptions, userConfig interface{}) {
	c, ok := userConfig.(*configtypes.UserAdapterConfig)
	if !ok || c == nil {
		return
	}
	if c.Name != nil {
		options.Name = *c.Name
	}
	if c.AuthorityOrigin != nil {
		options.AuthorityOrigin = strings.TrimRight(*c.AuthorityOrigin, "/")
	}
	if c.RelayURL != nil {
		options.RelayURL = strings.TrimRight(*c.RelayURL, "/")
	}
	if c.MinPopupHeightPx != nil {
		options.MinPopupHeightPx = *c.MinPopupHeightPx
	}
	if c.MaxPopupWidthPx != nil {
		options.MaxPopupWidthPx = *c.MaxPopupWidthPx
	}
	if c.ViewportWidthPx != nil {
		options.ViewportWidthPx = *c.ViewportWidthPx
	}
	if c.ViewportHeightPx != nil {
		options.ViewportHeightPx = *c.ViewportHeightPx
	}
	// 时长字段解析失败时保留默认值，由 config.ValidateAppConfig 报告
	if c.OperationTimeout != nil {
		if d, err := time.ParseDuration(*c.OperationTimeout); err == nil && d >= 0 {
			options.OperationTimeout = d
		}
	}
	if c.DialTimeout != nil {
		if d, err := time.ParseDuration(*c.DialTimeout); err == nil && d > 0 {
			options.DialTimeout = d
		}
	}
}

// GetOptions 获取完整的适配器配置选项
func (c *Config) GetOptions() *AdapterOptions {
	return c.options
}

// GetName 获取钱包展示名称
func (c *Config) GetName() string {
	return c.options.Name
}

// GetAuthorityOrigin 获取审批页面所在源
func (c *Config) GetAuthorityOrigin() string {
	return c.options.AuthorityOrigin
}

// ApproveURL 连接审批页面
func (c *Config) ApproveURL(nonce string) string {
	return fmt.Sprintf("%s/wallet-adapter/approve/%s", c.options.AuthorityOrigin, nonce)
}

// SignTransactionURL 交易签名页面
func (c *Config) SignTransactionURL(nonce string) string {
	return fmt.Sprintf("%s/wallet-adapter/sign/%s", c.options.AuthorityOrigin, nonce)
}

// SignMessageURL 消息签名页面
func (c *Config) SignMessageURL(nonce string) string {
	return fmt.Sprintf("%s/wallet-adapter/sign/message/%s", c.options.AuthorityOrigin, nonce)
}

// GetRelayURL 获取弹窗中继基地址
//
// 未显式配置时由审批源推导：https://host → wss://host，http://host → ws://host。
func (c *Config) GetRelayURL() (string, error) {
	if c.options.RelayURL != "" {
		return c.options.RelayURL, nil
	}
	u, err := url.Parse(c.options.AuthorityOrigin)
	if err != nil {
		return "", fmt.Errorf("invalid authority origin %q: %w", c.options.AuthorityOrigin, err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	default:
		return "", fmt.Errorf("unsupported authority origin scheme %q", u.Scheme)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// GetMinPopupHeightPx 最小弹窗高度
func (c *Config) GetMinPopupHeightPx() int {
	return c.options.MinPopupHeightPx
}

// GetMaxPopupWidthPx 最大弹窗宽度
func (c *Config) GetMaxPopupWidthPx() int {
	return c.options.MaxPopupWidthPx
}

// GetViewport 调用方可用视口（宽, 高）
func (c *Config) GetViewport() (int, int) {
	return c.options.ViewportWidthPx, c.options.ViewportHeightPx
}

// GetOperationTimeout 单次操作超时，0 表示不限
func (c *Config) GetOperationTimeout() time.Duration {
	return c.options.OperationTimeout
}

// GetDialTimeout 中继拨号超时
func (c *Config) GetDialTimeout() time.Duration {
	return c.options.DialTimeout
}
