package adapter

import (
	"go.uber.org/fx"

	adapterconfig "github.com/weisyn/wallet-adapter/internal/config/adapter"
	logimpl "github.com/weisyn/wallet-adapter/internal/core/infrastructure/log"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/handshake"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/identity"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
)

// ModuleParams 定义适配器模块的依赖参数
type ModuleParams struct {
	fx.In

	Options  *adapterconfig.AdapterOptions
	Engine   handshake.Engine
	Channels popup.ChannelManager
	Identity identity.Cache
	Logger   log.Logger     `optional:"true"`
	Events   event.EventBus `optional:"true"`
}

// Module 返回适配器模块
func Module() fx.Option {
	return fx.Module("adapter",
		fx.Provide(func(params ModuleParams) *Adapter {
			return New(Params{
				Engine:   params.Engine,
				Channels: params.Channels,
				Identity: params.Identity,
				Config:   adapterconfig.NewFromOptions(params.Options),
				Logger:   logimpl.NewModuleLogger(params.Logger, "adapter"),
				Events:   params.Events,
			})
		}),
	)
}
