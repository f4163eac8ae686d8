package app

import (
	"go.uber.org/fx"

	"github.com/weisyn/wallet-adapter/client/adapter"
	config "github.com/weisyn/wallet-adapter/internal/config"
	"github.com/weisyn/wallet-adapter/internal/core/handshake"
	"github.com/weisyn/wallet-adapter/internal/core/infrastructure/event"
	log "github.com/weisyn/wallet-adapter/internal/core/infrastructure/log"
	"github.com/weisyn/wallet-adapter/internal/core/infrastructure/metrics"
	"github.com/weisyn/wallet-adapter/internal/core/infrastructure/storage"
	"github.com/weisyn/wallet-adapter/internal/core/popup"
	configInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/config"
	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
)

// Bootstrap 应用引导程序
type Bootstrap struct {
	opts *options
}

// NewBootstrap 创建引导程序
func NewBootstrap(opts *options) *Bootstrap {
	return &Bootstrap{opts: opts}
}

// SetupInfrastructureLayer 设置基础设施层模块
func (b *Bootstrap) SetupInfrastructureLayer() []fx.Option {
	return []fx.Option{
		fx.Provide(func() configInterface.AppOptions { return b.opts }),
		config.Module(),                   // 1. 配置(不依赖其他)
		log.Module(),                      // 2. 日志(依赖配置)
		event.Module(),                    // 3. 事件(依赖配置)
		storage.Module(),                  // 4. 身份缓存存储(依赖配置和日志)
		metrics.Module(b.opts.registerer), // 5. 指标注册表与导出
	}
}

// SetupChannelLayer 设置弹窗通道层
func (b *Bootstrap) SetupChannelLayer() []fx.Option {
	if b.opts.channels != nil {
		channels := b.opts.channels
		return []fx.Option{
			fx.Provide(func() popupInterface.ChannelManager { return channels }),
		}
	}

	options := []fx.Option{popup.Module()}
	if b.opts.launcher != nil {
		launcher := b.opts.launcher
		options = append(options, fx.Provide(func() popup.Launcher { return launcher }))
	}
	return options
}

// SetupBusinessLayer 设置握手引擎与门面
func (b *Bootstrap) SetupBusinessLayer() []fx.Option {
	return []fx.Option{
		handshake.Module(),
		adapter.Module(),
	}
}

// Options 汇总全部模块
func (b *Bootstrap) Options() []fx.Option {
	var all []fx.Option
	all = append(all, b.SetupInfrastructureLayer()...)
	all = append(all, b.SetupChannelLayer()...)
	all = append(all, b.SetupBusinessLayer()...)
	return all
}
