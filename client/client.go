// Package client 提供弹窗钱包适配器的对外客户端
//
// 调用方通过 New 获得已装配好的 Client，无需了解内部的模块组装方式。
package client

import (
	"context"

	"github.com/weisyn/wallet-adapter/client/adapter"
	"github.com/weisyn/wallet-adapter/internal/app"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/event"
)

// Option 客户端选项
type Option = app.Option

// 可用选项
var (
	WithConfigFile     = app.WithConfigFile
	WithEmbeddedConfig = app.WithEmbeddedConfig
	WithAppConfig      = app.WithAppConfig
	WithLauncher       = app.WithLauncher
	WithChannelManager = app.WithChannelManager
	WithRegisterer     = app.WithRegisterer
)

// Client 弹窗钱包适配器客户端 - 统一的客户端入口
// 嵌入 *adapter.Adapter，提供连接、断开、交易签名、消息签名能力
type Client struct {
	*adapter.Adapter

	app *app.App
}

// New 装配并启动客户端
// 未指定配置时使用默认配置：https://fractal.is 授权方 + badger 身份缓存
func New(ctx context.Context, opts ...Option) (*Client, error) {
	a, err := app.Start(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{
		Adapter: a.Adapter(),
		app:     a,
	}, nil
}

// Events 获取生命周期事件总线
func (c *Client) Events() event.EventBus {
	return c.app.Events()
}

// Close 关闭客户端，拆除弹窗通道并关闭身份缓存存储
func (c *Client) Close(ctx context.Context) error {
	return c.app.Stop(ctx)
}
